// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte("[viewport]\nwidth = 400\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	widths := make(chan float32, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, log.New(io.Discard), func(f Fixture) error {
			widths <- f.Viewport.Width
			return nil
		})
	}()

	timeout := time.After(10 * time.Second)
	select {
	case w := <-widths:
		if w != 400 {
			t.Fatalf("initial width %v, want 400", w)
		}
	case err := <-done:
		t.Fatalf("Watch returned early: %v", err)
	case <-timeout:
		t.Fatal("no initial fixture")
	}

	if err := os.WriteFile(path, []byte("[viewport]\nwidth = 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for reloaded := false; !reloaded; {
		select {
		case w := <-widths:
			// Partial writes may deliver the old contents first.
			reloaded = w == 900
		case err := <-done:
			t.Fatalf("Watch returned early: %v", err)
		case <-timeout:
			t.Fatal("change not seen")
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Watch returned %v, want context.Canceled", err)
	}
}

func TestWatchCallbackError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	stop := errors.New("stop")
	err := Watch(context.Background(), path, log.New(io.Discard), func(Fixture) error {
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Watch returned %v, want %v", err, stop)
	}
}

func TestWatchMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scene.toml")
	err := Watch(context.Background(), path, log.New(io.Discard), func(Fixture) error {
		return nil
	})
	if err == nil {
		t.Error("watching a missing directory succeeded")
	}
}
