// Package ledger persists audit records to the append-only CSV ledger.
package ledger

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ubuntu/decorate"

	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
	"github.com/refurbworks/laptop-audit/internal/constants"
	"github.com/refurbworks/laptop-audit/internal/grading"
)

// Columns is the fixed ledger schema, in persisted order.
var Columns = []string{
	"timestamp", "service_tag", "model", "cpu", "cores",
	"ram_gb", "ram_type", "storage_type", "storage_gb",
	"smart_status", "battery_pct", "gpu", "resolution",
	"resolution_class", "screen_grade", "chassis_grade",
	"charger", "recommendation",
}

// Entry is one fully audited unit, ready to persist.
type Entry struct {
	Time           time.Time
	Hardware       hwscan.Record
	Grades         grading.Grades
	Recommendation grading.Recommendation
}

// Row maps an entry to the ledger schema, in Columns order. Sentinel values are
// carried through literally; no further normalization happens here.
func Row(e Entry) []string {
	return []string{
		e.Time.Format(constants.TimestampFormat),
		e.Hardware.ServiceTag,
		e.Hardware.Model,
		e.Hardware.CPUModel,
		strconv.Itoa(e.Hardware.CPUCores),
		strconv.Itoa(e.Hardware.RAMSizeGB),
		e.Hardware.RAMType,
		e.Hardware.StorageKind,
		strconv.Itoa(e.Hardware.StorageGB),
		e.Hardware.StorageHealth,
		e.Hardware.BatteryPct,
		e.Hardware.GPU,
		e.Hardware.Resolution,
		e.Hardware.ResolutionClass,
		string(e.Grades.Screen),
		string(e.Grades.Chassis),
		e.Grades.Charger,
		string(e.Recommendation),
	}
}

// CSV appends audit entries to the ledger file in a directory.
type CSV struct{}

// New returns a new CSV ledger.
func New() CSV {
	return CSV{}
}

// Append writes one entry to the ledger in dir, opening and closing the file
// within the call so a crash between units never corrupts earlier rows. The
// header is written if and only if the file did not exist at open time.
func (CSV) Append(e Entry, dir string) (err error) {
	defer decorate.OnError(&err, "could not append audit row")

	path := filepath.Join(dir, constants.LedgerFileName)
	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Columns); err != nil {
			return err
		}
	}
	if err := w.Write(Row(e)); err != nil {
		return err
	}
	w.Flush()

	return w.Error()
}
