package logging

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
)

func TestNoOpDropsEverything(t *testing.T) {
	logger := NoOp()

	// Must be safe to call at every level without side effects or panics.
	logger.Trace("trace", "k", "v")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	if got := logger.WithContext(context.Background()); got == nil {
		t.Fatalf("WithContext returned nil logger")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("readtime", "info", "bogus"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestNewBuildsLogger(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty"} {
		logger, err := New("readtime", "debug", format)
		if err != nil {
			t.Fatalf("New(%q): %v", format, err)
		}
		if logger == nil {
			t.Fatalf("New(%q) returned nil logger", format)
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"TRACE":   glog.Trace,
		"debug":   glog.Debug,
		"Info":    glog.Info,
		"warning": glog.Warn,
		"error":   glog.Error,
		"fatal":   glog.Fatal,
		"bogus":   "",
	}

	for input, want := range cases {
		if got := normalizeLevel(input); got != want {
			t.Fatalf("normalizeLevel(%q) = %q, want %q", input, got, want)
		}
	}
}
