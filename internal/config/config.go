package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/schedh/internal/batch"
)

// Output formats accepted by --format.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
	FormatSQLite  = "sqlite"
)

// CSV encodings accepted by --csv-encoding.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

const defaultProgressEvery = 1000

// Config holds all runtime configuration for a schedh run.
type Config struct {
	DSN                 string
	InputDir            string
	OutPath             string
	Format              string // "csv", "parquet" or "sqlite"
	CSVEncoding         string // "utf-8" or "windows-1252"
	LogFormat           string // "text" or "json"
	LogLevel            string
	NormalizeIndicators bool // opt-in: rewrite Schedule H checkboxes to Yes/No
	AllowFailures       bool
	ProgressEvery       int
	Batches             batch.Registry
}

// yamlConfig is the on-disk YAML structure. The batches key is read by
// batch.LoadFile.
type yamlConfig struct {
	NormalizeIndicators *bool `yaml:"normalize_indicators"`
	ProgressEvery       int   `yaml:"progress_every"`
}

// Flag names whose explicit command-line value outranks the config file.
const (
	flagNormalizeIndicators = "normalize-indicators"
	flagProgressEvery       = "progress-every"
)

// LoadFromFile reads a YAML config file and merges its values into Config.
// Batch entries are layered over the built-in release table.
func (c *Config) LoadFromFile(path string) error {
	return c.MergeFile(path, nil)
}

// MergeFile is LoadFromFile for a command line: values of flags for which
// isSet reports true are left alone. A nil isSet treats every flag as unset.
func (c *Config) MergeFile(path string, isSet func(name string) bool) error {
	if isSet == nil {
		isSet = func(string) bool { return false }
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.ProgressEvery < 0 {
		return fmt.Errorf("progress_every must be positive, got %d", yc.ProgressEvery)
	}
	if yc.NormalizeIndicators != nil && !isSet(flagNormalizeIndicators) {
		c.NormalizeIndicators = *yc.NormalizeIndicators
	}
	if yc.ProgressEvery > 0 && !isSet(flagProgressEvery) {
		c.ProgressEvery = yc.ProgressEvery
	}

	batches, err := batch.LoadFile(path)
	if err != nil {
		return err
	}
	c.Registry().Merge(batches)
	return nil
}

// Registry returns the batch registry for the run. Entries added from config
// files shadow the built-in release table.
func (c *Config) Registry() batch.Registry {
	if c.Batches == nil {
		c.Batches = batch.Registry{}
	}
	return c.Batches
}

// Progress returns the progress interval in files, applying the default.
func (c *Config) Progress() int {
	if c.ProgressEvery <= 0 {
		return defaultProgressEvery
	}
	return c.ProgressEvery
}

// Validate checks required fields for an extract run and fills defaults.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("--input is required")
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("input not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %s is not a directory", c.InputDir)
	}
	if c.OutPath == "" {
		return fmt.Errorf("--out is required")
	}
	if c.Format == "" {
		c.Format = formatFromPath(c.OutPath)
	}
	switch c.Format {
	case FormatCSV, FormatParquet, FormatSQLite:
	default:
		return fmt.Errorf("unknown format %q (want csv, parquet or sqlite)", c.Format)
	}
	if c.CSVEncoding == "" {
		c.CSVEncoding = EncodingUTF8
	}
	switch c.CSVEncoding {
	case EncodingUTF8, EncodingWindows1252:
	default:
		return fmt.Errorf("unknown csv encoding %q", c.CSVEncoding)
	}
	return nil
}

// ValidateDSN checks that a database connection string was supplied.
func (c *Config) ValidateDSN() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or SCHEDH_DB_URL is required")
	}
	return nil
}

func formatFromPath(path string) string {
	switch filepath.Ext(path) {
	case ".parquet":
		return FormatParquet
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	}
	return FormatCSV
}
