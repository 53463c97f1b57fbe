package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Holder hands out the current portfolio. Readers never block a reload.
type Holder struct {
	p atomic.Pointer[Portfolio]
}

func NewHolder(p *Portfolio) *Holder {
	h := &Holder{}
	h.p.Store(p)
	return h
}

func (h *Holder) Get() *Portfolio { return h.p.Load() }

func (h *Holder) Set(p *Portfolio) { h.p.Store(p) }

// reloadDelay batches the burst of events a single editor save produces.
const reloadDelay = 200 * time.Millisecond

// Watch reloads path into h whenever the file changes, until ctx is done.
// A file that fails to load or validate is logged and the previous
// portfolio keeps being served.
func Watch(ctx context.Context, path string, h *Holder, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file by renaming.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching content", zap.String("path", abs))

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(reloadDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("content watcher error", zap.Error(err))

		case <-timer.C:
			p, err := LoadFile(abs)
			if err != nil {
				logger.Error("content reload failed, keeping previous", zap.Error(err))
				continue
			}
			h.Set(p)
			logger.Info("content reloaded", zap.String("path", abs))
		}
	}
}
