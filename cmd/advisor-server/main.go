// Command advisor-server exposes the preflop advisor over websockets.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cardworks/holdem/internal/advisor"
	"github.com/cardworks/holdem/internal/gto"
	"github.com/cardworks/holdem/internal/server"
)

var CLI struct {
	Config   string `short:"c" default:"advisor-server.hcl" help:"Path to HCL configuration file"`
	Addr     string `short:"a" help:"Listen address (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("advisor-server"),
		kong.Description("Websocket endpoint for preflop strategy queries"))

	cfg, err := server.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	logger := log.New(os.Stderr)
	if level, err := log.ParseLevel(cfg.Server.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	addr := cfg.Addr()
	if CLI.Addr != "" {
		addr = CLI.Addr
	}

	engine := gto.NewEngine(logger)
	if cfg.Advisor.WarmCache {
		start := time.Now()
		count := engine.Warm()
		logger.Info("decision cache warmed", "entries", count, "elapsed", time.Since(start).Round(time.Millisecond))
	}

	srv := server.New(addr, advisor.New(engine, logger), logger,
		time.Duration(cfg.Server.IdleTimeoutSec)*time.Second, nil)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Info("shutting down")
		if err := srv.Stop(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	if err := srv.Start(); err != nil {
		logger.Error("server failed", "error", err)
		ctx.Exit(1)
	}
}
