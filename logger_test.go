package isopath

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := FitSubpath([]Point{Pt(1, 1), Pt(1, 1)}, false, DefaultFitOptions()); err != nil {
		t.Fatal(err)
	}
	if _, err := FitSubpath(sinePoints(30, 10, 12), false, DefaultFitOptions()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, msg := range []string{"isopath: dropping degenerate subpath", "isopath: fitted subpath"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output %q is missing %q", out, msg)
		}
	}

	SetLogger(nil)
	buf.Reset()
	FitSubpath([]Point{Pt(1, 1)}, false, DefaultFitOptions())
	if buf.Len() != 0 {
		t.Errorf("got output %q after SetLogger(nil)", buf.String())
	}
}
