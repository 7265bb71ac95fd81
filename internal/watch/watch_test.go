package watch_test

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/shapecheck/internal/watch"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := watch.NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for range 5 {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(10 * time.Millisecond)
	}
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	d := watch.NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_StopWaitsForRunningCallback(t *testing.T) {
	d := watch.NewDebouncer(time.Millisecond)
	started := make(chan struct{})
	var finished atomic.Bool
	d.Trigger(func() {
		close(started)
		time.Sleep(100 * time.Millisecond)
		finished.Store(true)
	})
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("callback did not start")
	}
	d.Stop()
	assert.True(t, finished.Load())
}

func TestFiles_ReportsChangesAsGiven(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := "doc.json"
	other := "other.json"
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- watch.Files(ctx, []string{path}, 20*time.Millisecond, nil, func(p []string) { changes <- p })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	select {
	case got := <-changes:
		assert.Equal(t, []string{"doc.json"}, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
