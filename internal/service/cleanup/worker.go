package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/service/game"
)

const defaultInterval = time.Minute

// EvictionListener hears about every game the worker drops, so sockets
// still watching it can be told and released.
type EvictionListener interface {
	GameEvicted(gameID string)
}

// Worker evicts finished and abandoned games from memory.
type Worker struct {
	SessionManager *game.SessionManager
	Listener       EvictionListener
	Interval       time.Duration
	IdleAfter      time.Duration
	FinishedAfter  time.Duration
}

// NewWorker builds a cleanup worker. listener may be nil.
func NewWorker(sm *game.SessionManager, listener EvictionListener, interval, idleAfter, finishedAfter time.Duration) *Worker {
	return &Worker{
		SessionManager: sm,
		Listener:       listener,
		Interval:       interval,
		IdleAfter:      idleAfter,
		FinishedAfter:  finishedAfter,
	}
}

// Start runs the cleanup on a ticker until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		log.Printf("[CLEANUP] Invalid interval %v, using %v", interval, defaultInterval)
		interval = defaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	log.Println("[CLEANUP] Background worker started")

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

func (w *Worker) RunOnce() int {
	removed := w.SessionManager.CleanupSessions(w.IdleAfter, w.FinishedAfter)
	if len(removed) == 0 {
		return 0
	}
	if w.Listener != nil {
		for _, gameID := range removed {
			w.Listener.GameEvicted(gameID)
		}
	}
	log.Printf("[CLEANUP] Removed %d stale games, %d still live", len(removed), w.SessionManager.Count())
	return len(removed)
}
