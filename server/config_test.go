package main

import (
	"bytes"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	cfg, err := loadConfig(map[string]string{
		"WIZMON_ADDR":             "127.0.0.1:9090",
		"WIZMON_LOG_LEVEL":        "DEBUG",
		"WIZMON_SHUTDOWN_TIMEOUT": "250ms",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"WIZMON_SHUTDOWN_TIMEOUT": "soon"}},
		{"bad level", map[string]string{"WIZMON_LOG_LEVEL": "chatty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.env)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(log.NewLogfmtLogger(&buf), config{LogLevel: "warn"})

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"), out)
	assert.True(t, strings.Contains(out, "msg=shown"), out)
	assert.True(t, strings.Contains(out, "level=warn"), out)
}

func TestNewLogger_CallerIsCallSite(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(log.NewLogfmtLogger(&buf), config{LogLevel: "debug"})

	level.Info(logger).Log("msg", "direct")
	level.Info(log.With(logger, "component", "calc")).Log("msg", "component")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.Contains(line, "caller=config_test.go:"), line)
		assert.False(t, strings.Contains(line, "level.go"), line)
	}
}
