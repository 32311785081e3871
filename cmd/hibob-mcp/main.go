package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/hibob-mcp/internal/config"
	"github.com/roivaz/hibob-mcp/internal/logging"
	"github.com/roivaz/hibob-mcp/internal/mcp"
)

func main() {
	root := newRootCommand()
	config.Init(root)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hibob-mcp: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hibob-mcp",
		Short:         "HiBob MCP server",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	root.PersistentFlags().String("hibob-api-token", "", "HiBob service user token (default $HIBOB_API_TOKEN)")
	root.PersistentFlags().String("hibob-base-url", "", "HiBob API base URL")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, error)")
	root.PersistentFlags().String("transport", "", "MCP transport: stdio or http")
	root.PersistentFlags().String("host", "", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("endpoint-path", "", "HTTP path of the MCP endpoint")
	return root
}

func run(cmd *cobra.Command, args []string) error {
	transport := config.Transport()
	if transport != config.TransportStdio && transport != config.TransportHTTP {
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, config.TransportStdio, config.TransportHTTP)
	}

	log := logging.New(logging.NewWithLevel(config.LogLevel()))

	cfg, err := mcp.DefaultConfig(log)
	if err != nil {
		return err
	}
	srv := mcp.New(cfg)

	ctx := cmd.Context()
	if transport == config.TransportHTTP {
		addr := config.Host() + ":" + strconv.Itoa(config.Port())
		return serveHTTP(ctx, srv, addr, log)
	}
	log.Info("serving MCP over stdio")
	return srv.ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

// serveHTTP blocks until ctx is done or the listener fails.
func serveHTTP(ctx context.Context, srv *mcp.Server, addr string, log logging.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
