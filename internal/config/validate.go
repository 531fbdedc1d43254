package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/detone/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, c.Log.validate()...)
	errs = append(errs, c.Convert.validate()...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (l *LogConfig) validate() []domain.FieldError {
	var errs []domain.FieldError

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, domain.FieldError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error (got %q)", l.Level),
		})
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		errs = append(errs, domain.FieldError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be json or text (got %q)", l.Format),
		})
	}

	return errs
}

func (c *ConvertConfig) validate() []domain.FieldError {
	var errs []domain.FieldError

	if c.Workers < 1 {
		errs = append(errs, domain.FieldError{
			Field:   "convert.workers",
			Message: fmt.Sprintf("must be >= 1 (got %d)", c.Workers),
		})
	}
	if c.ChunkSize < 1 {
		errs = append(errs, domain.FieldError{
			Field:   "convert.chunk_size",
			Message: fmt.Sprintf("must be >= 1 (got %d)", c.ChunkSize),
		})
	}
	if !strings.HasPrefix(c.BackupExt, ".") || strings.ContainsAny(c.BackupExt, `/\`) {
		errs = append(errs, domain.FieldError{
			Field:   "convert.backup_ext",
			Message: fmt.Sprintf("must start with a dot and contain no path separators (got %q)", c.BackupExt),
		})
	}

	return errs
}
