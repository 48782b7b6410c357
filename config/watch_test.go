package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherStopsOnCancel(t *testing.T) {
	path := writeTempConfig(t, "env: dev\n")
	w := Watcher{Path: path, Debounce: 10 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Start(ctx, nil, nil), context.Canceled)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := Watcher{Path: filepath.Join(t.TempDir(), "nope", "cfg.yaml")}
	err := w.Start(context.Background(), nil, nil)
	assert.ErrorContains(t, err, "watch")
}

func TestWatcherTriggersOnChange(t *testing.T) {
	path := writeTempConfig(t, "env: dev\n")
	w := Watcher{Path: path, Debounce: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := make(chan AppConfig, 16)
	go func() {
		_ = w.Start(ctx, func(cfg AppConfig) { updates <- cfg }, nil)
	}()

	var got AppConfig
	// rewrite until the watcher has registered and picked up a change
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("env: dev\nlog:\n  level: debug\n"), 0o644); err != nil {
			return false
		}
		select {
		case got = <-updates:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := writeTempConfig(t, "env: dev\n")
	w := Watcher{Path: path, Debounce: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errs := make(chan error, 16)
	go func() {
		_ = w.Start(ctx, nil, func(err error) { errs <- err })
	}()

	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("env: dev\nlog:\n  level: loud\n"), 0o644); err != nil {
			return false
		}
		select {
		case err := <-errs:
			return strings.Contains(err.Error(), "log.level")
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}
