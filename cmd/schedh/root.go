package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/schedh/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "schedh",
	Short: "IRS Form 990 Schedule H → wide table extractor",
	Long:  "Walks directories of IRS e-file XML release batches and flattens every Schedule H filing into one wide row.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("SCHEDH_DB_URL"), "Postgres connection string (or set SCHEDH_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
