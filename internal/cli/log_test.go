package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/koopamoopa/Decoding-Unicode/pkg/pipeline"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("decoding") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("fetched document") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("fetched document") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("decoding")

	if !strings.Contains(buf.String(), appName) {
		t.Errorf("output = %q, want %q prefix", buf.String(), appName)
	}
}

func TestRunTimerSummary(t *testing.T) {
	var buf bytes.Buffer
	timer := startRunTimer(newLogger(&buf, log.InfoLevel))

	timer.summary(pipeline.Stats{RecordCount: 2, Height: 2, Width: 3})

	out := buf.String()
	for _, want := range []string{"decoded", "characters=2", "rows=2", "cols=3", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output = %q, missing %q", out, want)
		}
	}
}

func TestLoggerRunField(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel).With("run", "abc123")

	logger.Info("fetched")

	if !strings.Contains(buf.String(), "run=abc123") {
		t.Errorf("output = %q, want run field", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	ctx := contextWithLogger(context.Background(), logger)

	if got := loggerFrom(ctx); got != logger {
		t.Fatal("loggerFrom should return the attached logger")
	}
	loggerFrom(ctx).Debug("prompting for URL", "interactive", false)

	if !strings.Contains(buf.String(), "interactive=false") {
		t.Errorf("output = %q, want debug line from context logger", buf.String())
	}
}

func TestLoggerFromEmptyContext(t *testing.T) {
	if got := loggerFrom(context.Background()); got != log.Default() {
		t.Error("loggerFrom should fall back to log.Default()")
	}
}
