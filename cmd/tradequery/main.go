package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"
	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trade-query-go/internal/container"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config path; empty uses defaults plus TQ_* env")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)

	c, err := container.New(*cfgPath)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	if err := c.Build(); err != nil {
		log.Fatalf("build: %v", err)
	}
	logger := c.Logger().Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := c.Start(ctx); err != nil {
		logger.Error("start failed", zap.Error(err))
		_ = c.Stop()
		os.Exit(1)
	}
	notify(logger, daemon.SdNotifyReady)

	<-ctx.Done()
	notify(logger, daemon.SdNotifyStopping)
	if err := c.Stop(); err != nil {
		os.Exit(1)
	}
}

// notify is a no-op outside systemd (NOTIFY_SOCKET unset).
func notify(logger *zap.Logger, state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		logger.Warn("sd_notify failed", zap.String("state", state), zap.Error(err))
		return
	}
	if sent {
		logger.Debug("sd_notify", zap.String("state", state))
	}
}
