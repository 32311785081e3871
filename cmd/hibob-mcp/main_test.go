package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/hibob-mcp/internal/config"
	"github.com/roivaz/hibob-mcp/internal/logging"
	"github.com/roivaz/hibob-mcp/internal/mcp"
)

func TestRun_UnknownTransport(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := newRootCommand()
	config.Init(root)
	root.SetArgs([]string{"--transport", "carrier-pigeon"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown transport "carrier-pigeon"`)
}

func TestServeHTTP_StopsWhenContextIsDone(t *testing.T) {
	log := logging.New(logr.Discard())
	srv := mcp.New(mcp.Config{EndpointPath: "/mcp"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, srv, "127.0.0.1:0", log) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serveHTTP did not return after cancel")
	}
}

func TestServeHTTP_ListenFailure(t *testing.T) {
	log := logging.New(logr.Discard())
	srv := mcp.New(mcp.Config{EndpointPath: "/mcp"})

	err := serveHTTP(context.Background(), srv, "127.0.0.1:-1", log)
	require.Error(t, err)
}
