package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the default logger replaced by Setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

// decodeLines parses newline-delimited JSON log output.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestSetupWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.ServerConfig
		wantDebug  bool
		wantInfo   bool
		wantErrors bool
	}{
		{
			name:       "debug level",
			cfg:        config.ServerConfig{LogLevel: "debug", LogFormat: "json"},
			wantDebug:  true,
			wantInfo:   true,
			wantErrors: true,
		},
		{
			name:       "info level",
			cfg:        config.ServerConfig{LogLevel: "info", LogFormat: "json"},
			wantInfo:   true,
			wantErrors: true,
		},
		{
			name:       "error level",
			cfg:        config.ServerConfig{LogLevel: "ERROR", LogFormat: "json"},
			wantErrors: true,
		},
		{
			name:       "debug flag overrides level",
			cfg:        config.ServerConfig{LogLevel: "error", LogFormat: "json", Debug: true},
			wantDebug:  true,
			wantInfo:   true,
			wantErrors: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			restoreDefault(t)
			var buf bytes.Buffer

			l, err := SetupWithWriter(tc.cfg, &buf)
			require.NoError(t, err)
			require.NotNil(t, l)

			l.Debug("debug message")
			l.Info("info message")
			l.Error("error message")

			out := buf.String()
			assert.Equal(t, tc.wantDebug, strings.Contains(out, "debug message"))
			assert.Equal(t, tc.wantInfo, strings.Contains(out, "info message"))
			assert.Equal(t, tc.wantErrors, strings.Contains(out, "error message"))
		})
	}
}

func TestSetupWithWriter_SetsDefault(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	_, err := SetupWithWriter(config.ServerConfig{LogLevel: "info", LogFormat: "json"}, &buf)
	require.NoError(t, err)

	slog.Info("via default", "key", "value")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "via default", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
}

func TestSetupWithWriter_TextFormat(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := SetupWithWriter(config.ServerConfig{LogLevel: "info", LogFormat: "text"}, &buf)
	require.NoError(t, err)

	l.Info("hello", "component", "test")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "component=test")
}

func TestSetupWithWriter_Errors(t *testing.T) {
	restoreDefault(t)

	_, err := SetupWithWriter(config.ServerConfig{LogLevel: "verbose", LogFormat: "json"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = SetupWithWriter(config.ServerConfig{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("fatal")
	assert.Error(t, err)
}
