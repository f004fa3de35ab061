package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("tree") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("tree") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("tree") }, true},
		{"warn at error level", log.ErrorLevel, func(l *log.Logger) { l.Warn("tree") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Read 2 trees")

	if !strings.Contains(buf.String(), "Read 2 trees (") {
		t.Errorf("progress.done() output = %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing after SetLogLevel: %q", buf.String())
	}
}

func TestConfigLogLevel(t *testing.T) {
	cfg := writeFile(t, "config.toml", []byte("[general]\nlog_level = \"debug\"\n"))

	tc := newTestCLI(t, "(A,B)C;")
	if err := tc.run("--config", cfg, "parse"); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !strings.Contains(tc.err.String(), "parsed tree") {
		t.Errorf("debug log from config level missing:\n%s", tc.err.String())
	}
}
