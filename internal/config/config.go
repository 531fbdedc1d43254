package config

// Config is the root application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Convert ConvertConfig `yaml:"convert"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ConvertConfig holds dictionary conversion settings.
//
// Backups are switched off with NoBackup rather than on with a Backup flag:
// cleanenv applies env-default to any zero value, so a YAML "false" could
// never override a "true" default.
type ConvertConfig struct {
	NoBackup  bool   `yaml:"no_backup"  env:"DETONE_NO_BACKUP"`
	BackupExt string `yaml:"backup_ext" env:"DETONE_BACKUP_EXT" env-default:".yaml"`
	Workers   int    `yaml:"workers"    env:"DETONE_WORKERS"    env-default:"4"`
	ChunkSize int    `yaml:"chunk_size" env:"DETONE_CHUNK_SIZE" env-default:"4096"`
}

// Backup reports whether a verbatim copy is written before a file is
// rewritten in place.
func (c ConvertConfig) Backup() bool { return !c.NoBackup }
