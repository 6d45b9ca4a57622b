package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/biogrid-mcp/internal/config"
	"github.com/roivaz/biogrid-mcp/internal/logging"
	"github.com/roivaz/biogrid-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "biogrid-mcp",
		Short:        "BioGRID interaction database MCP server",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("transport", "stdio", "Transport to serve: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("endpoint-path", "/mcp/jsonrpc", "HTTP endpoint path")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("biogrid-base-url", config.DefaultBaseURL, "BioGRID REST base URL")
	root.PersistentFlags().Duration("biogrid-timeout", config.DefaultTimeout, "Timeout for each BioGRID request")

	config.Init(root)
	config.BindFlag(root, config.KeyEndpointPath, "endpoint-path")
	config.BindFlag(root, config.KeyLogLevel, "log-level")
	config.BindFlag(root, config.KeyBaseURL, "biogrid-base-url")
	config.BindFlag(root, config.KeyTimeout, "biogrid-timeout")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "biogrid-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logging.New(logging.LevelLogger(config.LogLevel())).WithName("biogrid-mcp")

	cfg, err := mcp.DefaultConfig(log)
	if err != nil {
		return err
	}
	srv := mcp.New(cfg)

	switch config.Transport() {
	case "stdio":
		log.Info("serving MCP over stdio")
		return srv.ServeStdio()
	case "http":
		return serveHTTP(srv, log)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", config.Transport())
	}
}

func serveHTTP(srv *mcp.Server, log logging.Logger) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("MCP server listening", "addr", addr, "path", config.EndpointPath())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
