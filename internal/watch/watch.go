// Package watch re-runs a callback when watched files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debouncer delays a callback until triggers stop arriving for the interval.
type Debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
	running sync.WaitGroup
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger (re)schedules fn. Only the last fn of a burst runs.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.running.Add(1)
		d.mu.Unlock()
		defer d.running.Done()
		fn()
	})
}

// Stop cancels any pending callback and waits for a running one to return.
// Later triggers are ignored. Stop must not be called from the callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.running.Wait()
}

// Files watches the given files and calls onChange with the changed files,
// spelled as in files and in their order, after each debounced burst of writes. It blocks until ctx is
// cancelled.
func Files(ctx context.Context, files []string, debounce time.Duration, logger *slog.Logger, onChange func([]string)) error {
	if logger == nil {
		logger = slog.Default()
	}
	files = slices.Clone(files)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer w.Close()

	// Directories are watched so that editors replacing files by rename
	// keep being observed.
	// wanted maps an absolute path to the position of its first spelling
	// in files.
	wanted := make(map[string]int, len(files))
	dirs := make(map[string]struct{})
	for i, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", f, err)
		}
		if _, dup := wanted[abs]; !dup {
			wanted[abs] = i
		}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %q: %w", d, err)
		}
	}
	logger.Info("watching files", "files", len(wanted), "debounce_ms", debounce.Milliseconds())

	deb := NewDebouncer(debounce)
	defer deb.Stop()

	var (
		mu      sync.Mutex
		pending = map[int]struct{}{}
	)
	flush := func() {
		mu.Lock()
		idx := make([]int, 0, len(pending))
		for i := range pending {
			idx = append(idx, i)
		}
		pending = map[int]struct{}{}
		mu.Unlock()
		if len(idx) == 0 {
			return
		}
		sort.Ints(idx)
		changed := make([]string, len(idx))
		for j, i := range idx {
			changed[j] = files[i]
		}
		onChange(changed)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			i, ok := wanted[abs]
			if !ok {
				continue
			}
			logger.Debug("file event", "path", files[i], "op", ev.Op.String())
			mu.Lock()
			pending[i] = struct{}{}
			mu.Unlock()
			deb.Trigger(flush)
		case err, ok := <-w.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
