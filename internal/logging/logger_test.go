package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		env, level string
		want       zapcore.Level
	}{
		{"development", "debug", zapcore.DebugLevel},
		{"production", "warn", zapcore.WarnLevel},
		{"production", "nonsense", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		logger, err := New(tc.env, tc.level)
		if err != nil {
			t.Fatalf("New(%q, %q): %v", tc.env, tc.level, err)
		}
		if !logger.Core().Enabled(tc.want) {
			t.Fatalf("%s/%s: level %v should be enabled", tc.env, tc.level, tc.want)
		}
		if tc.want > zapcore.DebugLevel && logger.Core().Enabled(tc.want-1) {
			t.Fatalf("%s/%s: level %v should be disabled", tc.env, tc.level, tc.want-1)
		}
	}
}
