package hwscan_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	nvmeProbes := map[string]string{
		"dmidecode -s system-serial-number": "5CG1234XYZ",
		"dmidecode -s system-product-name":  "Latitude 7420",
		"dmidecode -t memory":               "Memory Device\n\tSize: 16 GB\n\tType: DDR4\n",
		"lsblk -dnpo NAME,TYPE,RM":          "/dev/nvme0n1 disk 0\n/dev/sdb disk 1\n",
		"lsblk -nrpo NAME,RM,TYPE":          "/dev/nvme0n1 0 disk\n/dev/sdb1 1 part\n",
		"lsblk -bdn -o SIZE /dev/nvme0n1":   "512110190592",
		"smartctl -H /dev/nvme0n1":          "SMART overall-health self-assessment test result: PASSED\n",
		"upower -i /org/freedesktop/UPower/devices/battery_BAT0": "    energy-full:         41.0 Wh\n    energy-full-design:  50.0 Wh\n",
		"lspci":  "01:00.0 3D controller: NVIDIA Corporation GA107M\n",
		"xrandr": "eDP-1 connected primary 1920x1080+0+0\n   1920x1080 60.02*+\n",
	}

	tests := map[string]struct {
		probes map[string]string
		files  map[string]string

		want hwscan.Record
	}{
		"Fully probed machine": {
			probes: nvmeProbes,
			files: map[string]string{
				"proc/cpuinfo": cpuinfoSample,
				"proc/meminfo": "MemTotal:       16384256 kB\n",
				"proc/mounts":  "proc /proc proc rw 0 0\n/dev/sdb1 /run/archiso/bootmnt vfat ro 0 0\n",
			},
			want: hwscan.Record{
				ServiceTag:      "5CG1234XYZ",
				Model:           "Latitude 7420",
				CPUModel:        "Intel(R) Core(TM) i7-8565U CPU @ 1.80GHz",
				CPUCores:        4,
				CPUGeneration:   8,
				RAMSizeGB:       16,
				RAMType:         "DDR4",
				StorageKind:     hwscan.StorageNVMe,
				StorageGB:       512,
				StorageHealth:   hwscan.HealthPassed,
				BatteryPct:      "82",
				GPU:             "NVIDIA Corporation GA107M",
				Resolution:      "1920x1080",
				ResolutionClass: hwscan.ClassStandard,
				PrimaryDisk:     "/dev/nvme0n1",
			},
		},
		"Every probe failing leaves sentinels": {
			want: hwscan.Record{
				ServiceTag:      hwscan.Unknown,
				Model:           hwscan.Unknown,
				CPUModel:        hwscan.Unknown,
				RAMType:         hwscan.Unknown,
				StorageKind:     hwscan.Unknown,
				StorageHealth:   hwscan.Unknown,
				BatteryPct:      hwscan.Unknown,
				GPU:             hwscan.NoGPU,
				Resolution:      hwscan.Unknown,
				ResolutionClass: hwscan.Unknown,
			},
		},
		"Boot medium parent disk is skipped": {
			probes: map[string]string{
				"lsblk -nrpo NAME,RM,TYPE":    "/dev/sdb1 1 part\n",
				"lsblk -dnpo NAME,TYPE,RM":    "/dev/sdb disk 0\n/dev/sda disk 0\n",
				"lsblk -bdn -o SIZE /dev/sda": "1000204886016",
				"smartctl -H /dev/sda":        "SMART overall-health self-assessment test result: FAILED!\n",
			},
			want: hwscan.Record{
				ServiceTag:      hwscan.Unknown,
				Model:           hwscan.Unknown,
				CPUModel:        hwscan.Unknown,
				RAMType:         hwscan.Unknown,
				StorageKind:     hwscan.StorageSATA,
				StorageGB:       1000,
				StorageHealth:   hwscan.HealthFailed,
				BatteryPct:      hwscan.Unknown,
				GPU:             hwscan.NoGPU,
				Resolution:      hwscan.Unknown,
				ResolutionClass: hwscan.Unknown,
				PrimaryDisk:     "/dev/sda",
			},
		},
		"Well known device path fallback": {
			files: map[string]string{
				"dev/sda": "",
			},
			want: hwscan.Record{
				ServiceTag:      hwscan.Unknown,
				Model:           hwscan.Unknown,
				CPUModel:        hwscan.Unknown,
				RAMType:         hwscan.Unknown,
				StorageKind:     hwscan.StorageSATA,
				StorageHealth:   hwscan.Unknown,
				BatteryPct:      hwscan.Unknown,
				GPU:             hwscan.NoGPU,
				Resolution:      hwscan.Unknown,
				ResolutionClass: hwscan.Unknown,
				PrimaryDisk:     "/dev/sda",
			},
		},
		"Kernel modes back up a missing xrandr": {
			files: map[string]string{
				"sys/class/drm/card0-eDP-1/modes": "2880x1800\n1920x1200\n",
			},
			want: hwscan.Record{
				ServiceTag:      hwscan.Unknown,
				Model:           hwscan.Unknown,
				CPUModel:        hwscan.Unknown,
				RAMType:         hwscan.Unknown,
				StorageKind:     hwscan.Unknown,
				StorageHealth:   hwscan.Unknown,
				BatteryPct:      hwscan.Unknown,
				GPU:             hwscan.NoGPU,
				Resolution:      "2880x1800",
				ResolutionClass: hwscan.Class4K,
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			for name, content := range tc.files {
				path := filepath.Join(root, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750), "Setup: couldn't create fake root dirs")
				require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Setup: couldn't write fake root file")
			}

			run := func(_ context.Context, args ...string) string {
				return tc.probes[strings.Join(args, " ")]
			}

			c := hwscan.New(hwscan.WithRoot(root), hwscan.WithRunner(run))
			got := c.Collect(context.Background())

			assert.Equal(t, tc.want, got, "unexpected hardware record")
		})
	}
}
