package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func memoryConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Storage = config.StorageMemory
	cfg.BcryptCost = bcrypt.MinCost
	cfg.GinMode = "test"
	cfg.HTTPAddr = freeAddr(t)
	cfg.GRPCAddr = freeAddr(t)
	cfg.ShutdownTimeout = time.Second
	return cfg
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(memoryConfig(t))
	require.NoError(t, err)
	assert.NotNil(t, app.userService)
	assert.NotNil(t, app.todoService)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Storage = "redis"

	_, err := NewApp(cfg)
	assert.ErrorContains(t, err, "invalid config")
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := memoryConfig(t)
	app := newApp(cfg, logging.Nop{}, repomanager.NewMemoryRepositoryManager())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		c, err := net.Dial("tcp", cfg.HTTPAddr)
		if err != nil {
			return false
		}
		c.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}
