package hwscan

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/refurbworks/laptop-audit/internal/fileutils"
)

// liveMountPoints are where common rescue distributions mount the boot medium.
var liveMountPoints = map[string]struct{}{
	"/run/archiso/bootmnt": {},
	"/run/initramfs/live":  {},
	"/cdrom":               {},
	"/live/image":          {},
}

// partSuffixRegex strips a trailing partition number from a device path,
// e.g. /dev/sdb1 -> /dev/sdb and /dev/nvme0n1p2 -> /dev/nvme0n1.
var partSuffixRegex = regexp.MustCompile(`p?\d+$`)

// BootPartition identifies the partition backing the boot medium, or "".
// mounts is /proc/mounts content; parts is `lsblk -nrpo NAME,RM,TYPE` output,
// consulted for the first removable partition when no live mount is found.
func BootPartition(mounts, parts string) string {
	for _, line := range strings.Split(mounts, "\n") {
		f := strings.Fields(line)
		if len(f) < 2 {
			continue
		}
		if _, ok := liveMountPoints[f[1]]; ok {
			return f[0]
		}
	}

	for _, line := range strings.Split(parts, "\n") {
		f := strings.Fields(line)
		if len(f) >= 3 && f[1] == "1" && f[2] == "part" {
			return f[0]
		}
	}

	return ""
}

// primaryDisk picks the internal disk to grade and wipe: the first non-removable
// whole disk that does not back the boot medium. "" when undetermined.
func (c Collector) primaryDisk(ctx context.Context) string {
	mounts := fileutils.ReadFileOrEmpty(filepath.Join(c.opts.root, "proc/mounts"))
	bootParent := ""
	if boot := BootPartition(mounts, c.opts.run(ctx, c.opts.partListCmd...)); boot != "" {
		bootParent = partSuffixRegex.ReplaceAllString(boot, "")
	}

	for _, line := range strings.Split(c.opts.run(ctx, c.opts.diskListCmd...), "\n") {
		f := strings.Fields(line)
		if len(f) >= 3 && f[1] == "disk" && f[2] == "0" && f[0] != bootParent {
			return f[0]
		}
	}

	for _, dev := range []string{"dev/nvme0n1", "dev/sda"} {
		if _, err := os.Stat(filepath.Join(c.opts.root, dev)); err == nil {
			return "/" + dev
		}
	}

	return ""
}

// collectStorage derives the storage kind, decimal-GB capacity and SMART verdict
// for the given disk. All sentinels when disk is empty.
func (c Collector) collectStorage(ctx context.Context, disk string) (kind string, sizeGB int, health string) {
	if disk == "" {
		return Unknown, 0, Unknown
	}

	kind = StorageSATA
	if strings.Contains(disk, "nvme") {
		kind = StorageNVMe
	}

	rawSize := c.opts.run(ctx, append(append([]string{}, c.opts.diskSizeCmd...), disk)...)
	if b, err := strconv.ParseInt(rawSize, 10, 64); err == nil {
		sizeGB = int(math.Round(float64(b) / 1_000_000_000))
	} else {
		c.opts.log.Warn("disk size not reported as an integer", "disk", disk, "size", rawSize)
	}

	health = Unknown
	smart := c.opts.run(ctx, append(append([]string{}, c.opts.smartCmd...), disk)...)
	// PASSED takes priority when both verdicts somehow appear in the output.
	if strings.Contains(smart, HealthPassed) {
		health = HealthPassed
	} else if strings.Contains(smart, HealthFailed) {
		health = HealthFailed
	}

	return kind, sizeGB, health
}
