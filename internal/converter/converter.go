// Package converter rewrites dictionary files so that the pinyin field of
// every entry line is toneless. Each file is backed up, transformed line by
// line with dictline, and replaced atomically.
package converter

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/detone/pkg/ctxutil"
)

// Defaults applied by New to zero-valued Options fields.
const (
	DefaultBackupExt = ".yaml"
	DefaultWorkers   = 4
	DefaultChunkSize = 4096
)

// Options controls a Converter.
type Options struct {
	// Backup writes a timestamped copy of a file before it is rewritten in place.
	Backup bool
	// BackupExt is the extension given to backup files.
	BackupExt string
	// Workers bounds the goroutines transforming one file.
	Workers int
	// ChunkSize is the number of lines handed to a worker at a time.
	ChunkSize int
}

// Converter converts dictionary files.
type Converter struct {
	log  *slog.Logger
	opts Options
	now  func() time.Time
}

// New creates a Converter.
func New(log *slog.Logger, opts Options) *Converter {
	if opts.BackupExt == "" {
		opts.BackupExt = DefaultBackupExt
	}
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = DefaultChunkSize
	}
	return &Converter{
		log:  log,
		opts: opts,
		now:  time.Now,
	}
}

func (c *Converter) logger(ctx context.Context) *slog.Logger {
	return c.log.With(ctxutil.LogAttrs(ctx)...)
}
