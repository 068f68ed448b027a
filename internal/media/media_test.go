package media_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refurbworks/laptop-audit/internal/media"
)

func TestWritableDir(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		liveMounted bool
		// Mount invocations whose joined arguments contain one of these
		// substrings fail; everything else succeeds.
		failOn []string
		parts  string

		wantDir      string // live, usb or fallback
		wantCommands []string
	}{
		"Live mount is remounted in place": {
			liveMounted:  true,
			wantDir:      "live",
			wantCommands: []string{"mount -o remount,rw {live}"},
		},
		"Boot partition is mounted when the remount fails": {
			liveMounted: true,
			failOn:      []string{"{live}"},
			parts:       "/dev/sdb1 1 part\n",
			wantDir:     "usb",
			wantCommands: []string{
				"mount -o remount,rw {live}",
				"mount -o remount,rw /dev/sdb1 {usb}",
			},
		},
		"Boot partition gets a fresh mount when its remount fails": {
			failOn:  []string{"remount"},
			parts:   "/dev/sdb1 1 part\n",
			wantDir: "usb",
			wantCommands: []string{
				"mount -o remount,rw /dev/sdb1 {usb}",
				"mount -o rw /dev/sdb1 {usb}",
			},
		},
		"No boot medium found falls back": {
			wantDir: "fallback",
		},
		"Everything failing falls back": {
			liveMounted: true,
			failOn:      []string{"mount"},
			parts:       "/dev/sdb1 1 part\n",
			wantDir:     "fallback",
			wantCommands: []string{
				"mount -o remount,rw {live}",
				"mount -o remount,rw /dev/sdb1 {usb}",
				"mount -o rw /dev/sdb1 {usb}",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			live := filepath.Join(root, "bootmnt")
			usb := filepath.Join(root, "usb")
			fallback := filepath.Join(root, "tmp")

			expand := func(s string) string {
				s = strings.ReplaceAll(s, "{live}", live)
				return strings.ReplaceAll(s, "{usb}", usb)
			}

			mounts := "proc /proc proc rw 0 0\n"
			if tc.liveMounted {
				mounts += "/dev/sdb1 " + live + " vfat ro 0 0\n"
			}
			require.NoError(t, os.MkdirAll(filepath.Join(root, "proc"), 0o750), "Setup: couldn't create fake root dirs")
			require.NoError(t, os.WriteFile(filepath.Join(root, "proc/mounts"), []byte(mounts), 0o600), "Setup: couldn't write mounts")

			var commands []string
			run := func(_ context.Context, args ...string) error {
				cmd := strings.Join(args, " ")
				commands = append(commands, cmd)
				for _, f := range tc.failOn {
					if strings.Contains(cmd, expand(f)) {
						return errors.New("mount failed")
					}
				}
				return nil
			}
			probe := func(_ context.Context, _ ...string) string { return tc.parts }

			r := media.New(
				media.WithRoot(root),
				media.WithRun(run),
				media.WithProbe(probe),
				media.WithMountPoints(live, usb, fallback),
			)

			got := r.WritableDir(context.Background())

			want := map[string]string{"live": live, "usb": usb, "fallback": fallback}[tc.wantDir]
			assert.Equal(t, want, got, "unexpected writable directory")

			var wantCommands []string
			for _, c := range tc.wantCommands {
				wantCommands = append(wantCommands, expand(c))
			}
			assert.Equal(t, wantCommands, commands, "unexpected mount invocations")

			if tc.wantDir == "usb" {
				_, err := os.Stat(usb)
				assert.NoError(t, err, "the mount point directory should have been created")
			}
		})
	}
}

func TestSync(t *testing.T) {
	t.Parallel()

	var commands []string
	run := func(_ context.Context, args ...string) error {
		commands = append(commands, strings.Join(args, " "))
		return nil
	}

	media.New(media.WithRun(run)).Sync(context.Background())

	assert.Equal(t, []string{"sync"}, commands, "Sync should invoke sync once")
}

func TestSyncErrorIsNotFatal(t *testing.T) {
	t.Parallel()

	run := func(_ context.Context, _ ...string) error { return errors.New("sync failed") }

	media.New(media.WithRun(run)).Sync(context.Background())
}
