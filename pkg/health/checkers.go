package health

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

// DirWritableCheck returns a check that verifies dir exists and accepts
// writes. The POS server keeps all state in local files, so a full or
// read-only data directory means every mutating request will fail.
func DirWritableCheck(dir string) CheckFunc {
	return func(_ context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return errors.Wrap(err, "stat data dir")
		}
		if !info.IsDir() {
			return errors.Errorf("%s is not a directory", dir)
		}

		probe := filepath.Join(dir, ".healthcheck")
		if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
			return errors.Wrap(err, "write probe")
		}
		return os.Remove(probe)
	}
}
