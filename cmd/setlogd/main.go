package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/setlog/internal/config"
	"github.com/meltforce/setlog/internal/mcp"
	"github.com/meltforce/setlog/internal/server"
	"github.com/meltforce/setlog/internal/store"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("SetLog starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	st, skipped, err := store.Load(cfg.Log.Path)
	if err != nil {
		// Unreadable log degrades to an empty table; the session can
		// still run, and saving targets the same path.
		log.Error("failed to load workout log, starting empty", "path", cfg.Log.Path, "error", err)
	}
	if skipped > 0 {
		log.Warn("skipped malformed log rows", "path", cfg.Log.Path, "skipped", skipped)
	}
	log.Info("workout log loaded", "path", cfg.Log.Path, "sets", st.Size())

	if *mcpMode {
		runMCP(st, cfg, log)
		return
	}

	srv := server.New(st, cfg.Log.Path, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "local (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: stop serving, then flush the log to disk.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}

	if err := store.Save(st, cfg.Log.Path); err != nil {
		log.Error("failed to save workout log", "path", cfg.Log.Path, "error", err)
		os.Exit(1)
	}
	log.Info("workout log saved", "path", cfg.Log.Path, "sets", st.Size())
}

func runMCP(st *store.Store, cfg *config.Config, log *slog.Logger) {
	s := mcp.New(st, cfg.Log.Path, Version, log)
	log.Info("mcp server starting", "transport", "stdio")
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
	// Persist whatever the session logged before exiting.
	if err := store.Save(st, cfg.Log.Path); err != nil {
		log.Error("failed to save workout log", "path", cfg.Log.Path, "error", err)
		os.Exit(1)
	}
}
