package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cargotags/cargotags/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)

	lg.Info("fetching sources")
	lg.Warn("cargo fetch failed")
	lg.Error(zerr.New("merge failed"))

	out := buf.String()
	for _, want := range []string{
		"INFO", "fetching sources",
		"WARN", "cargo fetch failed",
		"ERROR", "merge failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}
