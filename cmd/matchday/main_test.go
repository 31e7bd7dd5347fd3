package main

import (
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_GENERATOR_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_GENERATOR_RUN", "1")
	main()
}

func TestRunFailsFastOnBrokenConfig(t *testing.T) {
	t.Setenv("MATCHDAY_CONFIG", filepath.Join(t.TempDir(), "missing.yml"))
	if got := run(nil); got != 1 {
		t.Fatalf("expected exit code 1 for missing explicit config, got %d", got)
	}
}
