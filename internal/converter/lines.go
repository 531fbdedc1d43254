package converter

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/detone/internal/dictline"
)

// SplitLines splits s after every "\n", keeping the terminators, so that
// joining the result reproduces s. An empty s yields no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ConvertLines transforms every line and returns the results in input order
// together with the line statistics. Files larger than one chunk are
// transformed concurrently. The only possible error is ctx's.
func (c *Converter) ConvertLines(ctx context.Context, lines []string) ([]string, Stats, error) {
	out := make([]string, len(lines))
	classes := make([]dictline.Class, len(lines))

	if err := c.transform(ctx, lines, out, classes); err != nil {
		return nil, Stats{}, err
	}

	log := c.logger(ctx)
	var stats Stats
	for i, line := range lines {
		stats.Record(classes[i], out[i] != line)
		if classes[i] == dictline.ClassMalformed {
			log.Debug("entry line without pinyin field, left unchanged", slog.Int("line", i+1))
		}
	}
	return out, stats, nil
}

func (c *Converter) transform(ctx context.Context, lines, out []string, classes []dictline.Class) error {
	chunk := c.opts.ChunkSize
	if c.opts.Workers == 1 || len(lines) <= chunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		transformRange(lines, out, classes, 0, len(lines))
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for start := 0; start < len(lines); start += chunk {
		end := min(start+chunk, len(lines))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			transformRange(lines, out, classes, start, end)
			return nil
		})
	}
	return g.Wait()
}

// transformRange fills out[lo:hi] and classes[lo:hi]. Ranges never overlap,
// so concurrent calls need no locking.
func transformRange(lines, out []string, classes []dictline.Class, lo, hi int) {
	for i := lo; i < hi; i++ {
		out[i], classes[i] = dictline.Process(lines[i])
	}
}
