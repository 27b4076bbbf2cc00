package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/gyeh/schedh/internal/batch"
)

const xmlSuffix = ".xml"

// ListBatches returns the names of the batch directories directly under
// inputDir, sorted. Plain files at the top level are ignored.
func ListBatches(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("list batches in %s: %w", inputDir, err)
	}
	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), e.IsDir()
	})
	sort.Strings(names)
	return names, nil
}

// ListFiles returns the paths of the .xml files directly inside batchDir,
// sorted by name. The suffix match is case-sensitive.
func ListFiles(batchDir string) ([]string, error) {
	entries, err := os.ReadDir(batchDir)
	if err != nil {
		return nil, fmt.Errorf("list files in %s: %w", batchDir, err)
	}
	xml := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && strings.HasSuffix(e.Name(), xmlSuffix)
	})
	paths := lo.Map(xml, func(e os.DirEntry, _ int) string {
		return filepath.Join(batchDir, e.Name())
	})
	sort.Strings(paths)
	return paths, nil
}

// MissingBatches returns the batch names registry resolves that are absent
// from present, sorted.
func MissingBatches(registry batch.Registry, present []string) []string {
	return lo.Without(registry.Names(), present...)
}
