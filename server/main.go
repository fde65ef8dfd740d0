package main

import (
	"context"
	"errors"
	"github.com/caarlos0/env/v11"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"os"
	"os/signal"
	"syscall"
	"wizmon/calc"
	"wizmon/http"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)

	cfg, err := loadConfig(env.ToMap(os.Environ()))
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}
	logger = newLogger(logger, cfg)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	calcService := calc.NewService()
	calcService = calc.NewLoggingService(log.With(logger, "component", "calc"), calcService)
	calcService = calc.NewInstrumentingService(registry, calcService)

	mux := nhttp.NewServeMux()
	mux.Handle("/api/", http.NewServer(calcService))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &nhttp.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, nhttp.ErrServerClosed) {
			level.Error(logger).Log("msg", "server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		level.Info(logger).Log("msg", "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "shutdown failed", "err", err)
		}
	}
}
