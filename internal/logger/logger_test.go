package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{"info", "json", false},
		{"debug", "console", false},
		{"warn", "", false},
		{"loud", "json", true},
		{"info", "xml", true},
	}

	for _, tc := range testCases {
		log, err := New(tc.level, tc.format)
		if tc.wantErr {
			if err == nil {
				t.Errorf("New(%q, %q) expected error", tc.level, tc.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q, %q) error = %v", tc.level, tc.format, err)
			continue
		}
		if log == nil {
			t.Errorf("New(%q, %q) returned nil logger", tc.level, tc.format)
		}
	}
}

func TestNewLevel(t *testing.T) {
	log, err := New("warn", "json")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info to be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Expected error to be enabled at warn level")
	}
}
