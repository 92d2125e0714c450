package shell

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	var fired atomic.Int32

	w := NewAssetWatcher(dir, 150*time.Millisecond, func() { fired.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bundle.js"), []byte{byte(i)}, 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return fired.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	// no further triggers without further changes
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestAssetWatcherWatchesNewSubdirectories(t *testing.T) {
	dir := t.TempDir()
	var fired atomic.Int32

	w := NewAssetWatcher(dir, 50*time.Millisecond, func() { fired.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	sub := filepath.Join(dir, "assets")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.Eventually(t, func() bool { return fired.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	before := fired.Load()
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "cell.png"), []byte("x"), 0o600))
	require.Eventually(t, func() bool { return fired.Load() > before }, 3*time.Second, 10*time.Millisecond)
}

func TestAssetWatcherMissingDir(t *testing.T) {
	w := NewAssetWatcher(filepath.Join(t.TempDir(), "nope"), 0, func() {})
	assert.Error(t, w.Run(context.Background()))
}

func TestNewAssetWatcherDefaultDebounce(t *testing.T) {
	assert.Equal(t, DefaultDebounce, NewAssetWatcher(".", 0, nil).debounce)
}
