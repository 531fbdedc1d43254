package converter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/detone/internal/domain"
)

// Result describes one converted file.
type Result struct {
	Input    string
	Output   string
	Backup   string // empty when no backup was written
	Stats    Stats
	Header   Header
	Duration time.Duration
}

// ConvertFile converts the dictionary at in and writes the result to out, or
// back to in when out is empty. When the file is rewritten in place and
// backups are enabled, a verbatim copy is written first; it is removed again
// if the new content cannot be written, since the original is then intact.
//
// Errors: domain.ErrNotFound if in does not exist, domain.ErrValidation for a
// directory or invalid UTF-8, domain.ErrAlreadyExists if the backup name is
// taken. Nothing is written in any of these cases.
func (c *Converter) ConvertFile(ctx context.Context, in, out string) (Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if out == "" {
		out = in
	}

	info, err := os.Stat(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", domain.ErrNotFound, in)
		}
		return Result{}, fmt.Errorf("stat %s: %w", in, err)
	}
	if info.IsDir() {
		return Result{}, domain.NewValidationError("path", in+" is a directory")
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", in, err)
	}
	if err := checkUTF8(data); err != nil {
		return Result{}, err
	}

	log := c.logger(ctx)
	lines := SplitLines(string(data))

	converted, stats, err := c.ConvertLines(ctx, lines)
	if err != nil {
		return Result{}, fmt.Errorf("convert: %w", err)
	}

	res := Result{Input: in, Output: out, Stats: stats}
	if h, ok, err := ParseHeader(lines); err != nil {
		log.Debug("dictionary header not decoded", slog.String("error", err.Error()))
	} else if ok {
		res.Header = h
	}

	if c.opts.Backup && samePath(in, out, info) {
		res.Backup = BackupPath(in, c.now(), c.opts.BackupExt)
		if err := writeBackup(res.Backup, data, info); err != nil {
			return Result{}, fmt.Errorf("backup %s: %w", in, err)
		}
		log.Info("backup created", slog.String("backup", res.Backup))
	}

	if err := writeFileAtomic(out, converted, info.Mode().Perm()); err != nil {
		if res.Backup != "" {
			if rmErr := os.Remove(res.Backup); rmErr != nil {
				log.Warn("remove unused backup", slog.String("backup", res.Backup), slog.String("error", rmErr.Error()))
			}
		}
		return Result{}, fmt.Errorf("write %s: %w", out, err)
	}

	res.Duration = time.Since(start)
	log.Info("file converted",
		slog.String("output", out),
		slog.String("dict_name", res.Header.Name),
		slog.Int("total", stats.Total),
		slog.Int("converted", stats.Converted),
		slog.Int("header", stats.Header),
		slog.Int("skipped", stats.Skipped),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// samePath reports whether out refers to the file described by inInfo.
func samePath(in, out string, inInfo fs.FileInfo) bool {
	if filepath.Clean(in) == filepath.Clean(out) {
		return true
	}
	outInfo, err := os.Stat(out)
	return err == nil && os.SameFile(inInfo, outInfo)
}

// checkUTF8 returns a validation error naming the first line that is not
// valid UTF-8.
func checkUTF8(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	line := 1
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return domain.NewValidationError("encoding", fmt.Sprintf("invalid UTF-8 on line %d", line))
		}
		if r == '\n' {
			line++
		}
		data = data[size:]
	}
	return nil
}

// writeFileAtomic writes lines to a temporary file beside path and renames it
// over path. The temporary file is removed on every failure path.
func writeFileAtomic(path string, lines []string, perm fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err = w.WriteString(line); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush temp file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
