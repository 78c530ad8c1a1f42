// internal/app/system/workers/screensweep.go
package workers

import (
	"sync"
	"time"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"go.uber.org/zap"
)

// ScreenSweep is a background worker that discards screen state belonging
// to idle sessions.
type ScreenSweep struct {
	screens  *screens.Registry
	log      *zap.Logger
	interval time.Duration
	idle     time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewScreenSweep creates a sweeper that runs every interval and drops
// screens untouched for longer than idle.
func NewScreenSweep(reg *screens.Registry, logger *zap.Logger, interval, idle time.Duration) *ScreenSweep {
	return &ScreenSweep{
		screens:  reg,
		log:      logger,
		interval: interval,
		idle:     idle,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *ScreenSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("screen sweep worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("idle_threshold", w.idle))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *ScreenSweep) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("screen sweep worker stopped")
}

func (w *ScreenSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *ScreenSweep) sweep() {
	if n := w.screens.Sweep(w.idle); n > 0 {
		w.log.Info("discarded idle screens", zap.Int("count", n))
	}
}
