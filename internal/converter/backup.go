package converter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/detone/internal/domain"
)

const (
	backupMarker     = ".backup_"
	backupTimeLayout = "20060102_150405"
)

// BackupPath names the backup of path taken at now: the last extension is
// replaced by ".backup_<YYYYMMDD_HHMMSS>" followed by ext, so
// "luna.dict.yaml" becomes "luna.dict.backup_20240501_093000.yaml".
func BackupPath(path string, now time.Time, ext string) string {
	if ext == "" {
		ext = DefaultBackupExt
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + backupMarker + now.Format(backupTimeLayout) + ext
}

// IsBackup reports whether path names a backup written by this package.
func IsBackup(path string) bool {
	return strings.Contains(filepath.Base(path), backupMarker)
}

// writeBackup writes data to a new file at path with the permissions and
// modification time of the original. An existing file is never overwritten.
func writeBackup(path string, data []byte, orig fs.FileInfo) error {
	if err := writeNewFile(path, data, orig.Mode().Perm()); err != nil {
		return err
	}
	mtime := orig.ModTime()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		return fmt.Errorf("set backup times: %w", err)
	}
	return nil
}

func writeNewFile(path string, data []byte, perm fs.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, path)
		}
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	_, err = f.Write(data)
	return err
}
