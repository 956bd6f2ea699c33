package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"info", false},
		{"debug", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestNewForLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewForLevel("info", &buf)
	if err != nil {
		t.Fatalf("NewForLevel: %v", err)
	}
	log.Debug("hidden detail")
	log.WithName("block").Info("rendered", "range", "a..b")
	log.Error(errors.New("boom"), "failed")

	out := buf.String()
	if strings.Contains(out, "hidden detail") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "rendered") || !strings.Contains(out, "a..b") {
		t.Errorf("info message missing: %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestNewForLevel_Debug(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewForLevel("debug", &buf)
	if err != nil {
		t.Fatalf("NewForLevel: %v", err)
	}
	log.WithValues("note", "daily.md").Debug("compiling block")
	if !strings.Contains(buf.String(), "compiling block") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}

func TestNew_FallsBackWhenUninitialized(t *testing.T) {
	l := New(logr.Logger{})
	if l.Logr().GetSink() == nil {
		t.Fatal("expected default sink")
	}
	d := Discard()
	d.Info("dropped")
}
