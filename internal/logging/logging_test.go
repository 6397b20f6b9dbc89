package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.WarnLevel,
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.WarnLevel,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Errorf("ParseLevel(%q): expected %s, got %s", raw, want, got)
		}
	}
}

func TestNew(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, "info", true)
	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "a.bin").Msg("shown")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug message should be filtered: %s", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "file=a.bin") {
		t.Errorf("expected info message with field, got %s", got)
	}
}
