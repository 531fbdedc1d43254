package converter

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/detone/pkg/ctxutil"
)

// Job names one file to convert. An empty Output rewrites Input in place.
type Job struct {
	Input  string
	Output string
}

// FileResult is the outcome of one Job.
type FileResult struct {
	Job
	Index   int  // 1-based position in the batch
	Skipped bool // Input is a backup file and was not touched
	Result  Result
	Err     error
}

// Summary aggregates a batch run.
type Summary struct {
	Files     []FileResult
	Succeeded int
	Failed    int
	Skipped   int
	Stats     Stats // sum over succeeded files
}

// Processed is the number of files that were attempted, i.e. not skipped.
func (s Summary) Processed() int { return s.Succeeded + s.Failed }

// HasErrors reports whether any attempted file failed.
func (s Summary) HasErrors() bool { return s.Failed > 0 }

// Run converts jobs one at a time, in order. Backup files are skipped.
// A failing file is logged and recorded; the remaining files still run.
// report, if non-nil, is called after each job.
func (c *Converter) Run(ctx context.Context, jobs []Job, report func(FileResult)) Summary {
	var sum Summary
	for i, job := range jobs {
		fctx := ctxutil.WithFile(ctx, job.Input)
		fr := FileResult{Job: job, Index: i + 1}

		if IsBackup(job.Input) {
			fr.Skipped = true
			sum.Skipped++
			c.logger(fctx).Info("skipping backup file")
		} else {
			fr.Result, fr.Err = c.ConvertFile(fctx, job.Input, job.Output)
			if fr.Err != nil {
				sum.Failed++
				c.logger(fctx).Error("file conversion failed", slog.String("error", fr.Err.Error()))
			} else {
				sum.Succeeded++
				sum.Stats.Add(fr.Result.Stats)
			}
		}

		sum.Files = append(sum.Files, fr)
		if report != nil {
			report(fr)
		}
	}

	c.logger(ctx).Info("batch completed",
		slog.Int("files", len(jobs)),
		slog.Int("succeeded", sum.Succeeded),
		slog.Int("failed", sum.Failed),
		slog.Int("skipped", sum.Skipped),
	)
	return sum
}
