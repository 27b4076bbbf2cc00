package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gyeh/schedh/internal/exitcode"
	"github.com/gyeh/schedh/internal/ingest"
)

func TestExitCodeFor(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"cancelled scan", context.Canceled, exitcode.Interrupted},
		{"cancelled load", &ingest.PipelineError{Phase: ingest.PhaseLoad, Err: fmt.Errorf("load producer: %w", context.Canceled)}, exitcode.Interrupted},
		{"enumerate", &ingest.PipelineError{Phase: ingest.PhaseEnumerate, Err: boom}, exitcode.EnumerateError},
		{"write", &ingest.PipelineError{Phase: ingest.PhaseWrite, Err: boom}, exitcode.WriteError},
		{"load", &ingest.PipelineError{Phase: ingest.PhaseLoad, Err: boom}, exitcode.LoadError},
		{"unphased", boom, exitcode.UsageError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
