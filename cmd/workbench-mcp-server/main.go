package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codex-ml/workbench-mcp-server/internal/app"
	"github.com/codex-ml/workbench-mcp-server/internal/audit"
	"github.com/codex-ml/workbench-mcp-server/internal/config"
	"github.com/codex-ml/workbench-mcp-server/internal/log"
	"github.com/codex-ml/workbench-mcp-server/internal/runtime"
	"github.com/codex-ml/workbench-mcp-server/internal/workbench"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML server-settings file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	var file *config.File
	if *configPath != "" {
		file, err = config.LoadFile(*configPath, &cfg)
		if err != nil {
			logger.Error("load config file failed", "error", err)
			os.Exit(1)
		}
	}

	client, err := workbench.New(workbench.Options{
		Host:           cfg.Host,
		APIKey:         cfg.APIKey,
		ProjectID:      cfg.ProjectID,
		Timeout:        cfg.HTTPTimeout,
		UploadInterval: cfg.UploadInterval,
		Logger:         logger,
	})
	if err != nil {
		logger.Error("workbench client failed", "error", err)
		os.Exit(1)
	}

	builder := runtime.Builder{
		Logger: logger,
		Audit:  audit.New(logger),
		Client: client,
	}
	if file != nil {
		builder.Name = file.Server.Name
		builder.Version = file.Server.Version
	}
	server, err := builder.Build()
	if err != nil {
		logger.Error("build server failed", "error", err)
		os.Exit(1)
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case "http":
		if err := runHTTP(baseCtx, cfg, server, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := runStdio(baseCtx, server); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

func runStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func runHTTP(ctx context.Context, cfg config.Config, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	application, err := app.New(ctx, cfg, handler, logger)
	if err != nil {
		return err
	}

	return application.Run(ctx)
}
