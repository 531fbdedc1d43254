// Command detone strips tone marks from the pinyin column of Rime dictionary
// files (*.dict.yaml) so they work with double-pinyin schemas.
//
// Usage:
//
//	detone [flags] file.dict.yaml [file.dict.yaml ...]
//
// Flags:
//
//	-config     path to YAML config file (default: $DETONE_CONFIG or ./detone.yaml)
//	-no-backup  rewrite files in place without a timestamped backup
//	-o          write the result here instead of rewriting the input (one file only)
//	-workers    goroutines per file (overrides config)
//	-version    print version and exit
//
// Files whose name contains ".backup_" are skipped.
//
// Exit codes: 0 = success, 1 = a file failed, 2 = usage error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/heartmarshall/detone/internal/app"
	"github.com/heartmarshall/detone/internal/config"
	"github.com/heartmarshall/detone/internal/converter"
	"github.com/heartmarshall/detone/internal/domain"
	"github.com/heartmarshall/detone/pkg/ctxutil"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("detone", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "path to YAML config file")
	noBackupFlag := fs.Bool("no-backup", false, "do not write a backup before rewriting a file in place")
	outFlag := fs.String("o", "", "output path (only with a single input file)")
	workersFlag := fs.Int("workers", 0, "goroutines per file (default from config)")
	versionFlag := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *versionFlag {
		fmt.Fprintln(stdout, "detone", app.BuildVersion())
		return exitOK
	}

	files := fs.Args()
	if len(files) == 0 {
		fs.SetOutput(stdout)
		usage(fs)
		return exitOK
	}
	if *outFlag != "" && len(files) > 1 {
		fmt.Fprintln(stderr, "detone: -o requires exactly one input file")
		return exitUsage
	}
	if *workersFlag < 0 {
		fmt.Fprintln(stderr, "detone: -workers must be >= 1")
		return exitUsage
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "detone: %v\n", err)
		return exitError
	}

	// CLI flags override config.
	if *noBackupFlag {
		cfg.Convert.NoBackup = true
	}
	if *workersFlag > 0 {
		cfg.Convert.Workers = *workersFlag
	}

	logger := app.NewLoggerTo(stderr, cfg.Log)
	ctx = ctxutil.WithRunID(ctx, uuid.New())
	logger.With(ctxutil.LogAttrs(ctx)...).Info("starting",
		slog.String("version", app.BuildVersion()),
		slog.Int("files", len(files)),
	)

	conv := converter.New(logger, converter.Options{
		Backup:    cfg.Convert.Backup(),
		BackupExt: cfg.Convert.BackupExt,
		Workers:   cfg.Convert.Workers,
		ChunkSize: cfg.Convert.ChunkSize,
	})

	jobs := make([]converter.Job, len(files))
	for i, f := range files {
		jobs[i] = converter.Job{Input: f, Output: *outFlag}
	}

	sum := conv.Run(ctx, jobs, func(fr converter.FileResult) {
		printResult(stdout, fr, len(jobs))
	})
	printSummary(stdout, sum)

	if sum.HasErrors() {
		return exitError
	}
	return exitOK
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: detone [flags] file.dict.yaml [file.dict.yaml ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Removes tone marks from the pinyin column of Rime dictionary files.")
	fmt.Fprintln(w, "Each file is rewritten in place after a timestamped backup is written")
	fmt.Fprintln(w, "next to it. Files named *.backup_* are skipped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

func printResult(w io.Writer, fr converter.FileResult, n int) {
	fmt.Fprintf(w, "[%d/%d] %s\n", fr.Index, n, fr.Input)
	switch {
	case fr.Skipped:
		fmt.Fprintln(w, "  skipped: backup file")
	case fr.Err != nil:
		fmt.Fprintf(w, "  error: %s\n", describeError(fr.Err))
	default:
		res := fr.Result
		if res.Backup != "" {
			fmt.Fprintf(w, "  backup:    %s\n", res.Backup)
		}
		if res.Output != res.Input {
			fmt.Fprintf(w, "  output:    %s\n", res.Output)
		}
		if res.Header.Name != "" {
			fmt.Fprintf(w, "  dict:      %s %s\n", res.Header.Name, res.Header.Version)
		}
		fmt.Fprintf(w, "  total:     %d\n", res.Stats.Total)
		fmt.Fprintf(w, "  converted: %d\n", res.Stats.Converted)
		fmt.Fprintf(w, "  header:    %d\n", res.Stats.Header)
		fmt.Fprintf(w, "  skipped:   %d\n", res.Stats.Skipped)
	}
}

func printSummary(w io.Writer, sum converter.Summary) {
	fmt.Fprintf(w, "%d/%d files processed", sum.Succeeded, sum.Processed())
	if sum.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", sum.Skipped)
	}
	fmt.Fprintln(w)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "file not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return err.Error() + " (retry in a second)"
	case errors.Is(err, context.Canceled):
		return "interrupted, file left unchanged"
	default:
		return err.Error()
	}
}
