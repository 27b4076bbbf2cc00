package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gyeh/schedh/internal/exitcode"
	"github.com/gyeh/schedh/internal/extract"
	"github.com/gyeh/schedh/internal/ingest"
	"github.com/gyeh/schedh/internal/logging"
)

var planSample int

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run: list batches and estimate Schedule H rows (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.InputDir, "input", "", "Directory of release batch directories (required)")
	f.StringVar(&configPath, "config", "", "YAML config file with extra batch entries")
	f.IntVar(&planSample, "sample", 50, "Files sampled per batch to estimate the Schedule H share")
	_ = planCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if configPath != "" {
		if err := cfg.MergeFile(configPath, cmd.Flags().Changed); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if cfg.InputDir == "" {
		log.Error().Msg("--input is required")
		os.Exit(exitcode.UsageError)
	}

	batches, err := ingest.ListBatches(cfg.InputDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to list batches")
		os.Exit(exitcode.EnumerateError)
	}

	registry := cfg.Registry()
	x := extract.New(extract.Options{})

	fmt.Println("=== schedh plan ===")
	fmt.Printf("Input:   %s\n", cfg.InputDir)
	fmt.Printf("Batches: %d\n\n", len(batches))
	fmt.Printf("  %-24s %-6s %8s %8s %8s %10s\n", "BATCH", "YEAR", "FILES", "SAMPLED", "SCHED_H", "PROJECTED")

	var totalFiles, totalProjected int64
	for _, name := range batches {
		prov := registry.Resolve(name)
		files, err := ingest.ListFiles(filepath.Join(cfg.InputDir, name))
		if err != nil {
			log.Error().Err(err).Str("batch", name).Msg("failed to list files")
			os.Exit(exitcode.EnumerateError)
		}

		sampled := files
		if planSample > 0 && len(sampled) > planSample {
			sampled = sampled[:planSample]
		}
		var hits, failed int
		for _, path := range sampled {
			switch ingest.ProcessFile(x, path, prov).Status {
			case ingest.Extracted:
				hits++
			case ingest.Failed:
				failed++
			}
		}

		var projected int64
		if len(sampled) > 0 {
			projected = int64(hits) * int64(len(files)) / int64(len(sampled))
		}
		totalFiles += int64(len(files))
		totalProjected += projected

		year := prov.Year
		if prov.IsZero() {
			year = "?"
		}
		fmt.Printf("  %-24s %-6s %8d %8d %8d %10d\n", name, year, len(files), len(sampled), hits, projected)
		if failed > 0 {
			log.Warn().Str("batch", name).Int("failed", failed).Msg("sampled files failed to parse")
		}
	}

	fmt.Printf("\nTotal files: %d\n", totalFiles)
	fmt.Printf("Estimated Schedule H rows: ~%d\n", totalProjected)

	missing := ingest.MissingBatches(registry, batches)
	fmt.Printf("Registered batches not in input: %d\n", len(missing))
	for _, name := range missing {
		log.Debug().Str("batch", name).Str("year", registry.Resolve(name).Year).Msg("registered batch not downloaded")
	}
	return nil
}
