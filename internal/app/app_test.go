// Where: internal/app/app_test.go
// What: Tests for the command dispatcher.
// Why: Ensure parsing, dispatch, and the version command behave.
package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stsenv/stsenv/internal/config"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	deps := Dependencies{
		Out:    &out,
		Err:    &bytes.Buffer{},
		Config: func() config.GlobalConfig { return config.GlobalConfig{} },
	}

	if exitCode := Run([]string{"version"}, deps); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected a version string")
	}
}

func TestRunUnknownFlag(t *testing.T) {
	var errOut bytes.Buffer
	deps := Dependencies{
		Out:    &bytes.Buffer{},
		Err:    &errOut,
		Config: func() config.GlobalConfig { return config.GlobalConfig{} },
	}

	if exitCode := Run([]string{"--no-such-flag"}, deps); exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	if !strings.HasPrefix(errOut.String(), "Error: ") {
		t.Fatalf("expected diagnostic line, got %q", errOut.String())
	}
}
