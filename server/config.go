package main

import (
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"strings"
	"time"
)

// config server settings read from the environment
type config struct {
	Addr            string        `env:"WIZMON_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"WIZMON_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"WIZMON_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func loadConfig(environment map[string]string) (config, error) {
	var cfg config
	err := env.ParseWithOptions(&cfg, env.Options{Environment: environment})
	if err != nil {
		return config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if _, err := levelOption(cfg.LogLevel); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// levelOption maps a WIZMON_LOG_LEVEL value to a level filter
func levelOption(name string) (level.Option, error) {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", name)
}

// newLogger builds the root logfmt logger filtered at cfg.LogLevel
func newLogger(w log.Logger, cfg config) log.Logger {
	logger := log.With(w, "ts", log.DefaultTimestampUTC)
	opt, err := levelOption(cfg.LogLevel)
	if err != nil {
		opt = level.AllowInfo()
	}
	// caller is bound outside the filter so it reports the logging call site
	return log.With(level.NewFilter(logger, opt), "caller", log.DefaultCaller)
}
