package snapshot

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hedef100/academia-core/internal/models"
)

// Writer is the write-behind saver between the state store and a
// backend. Saves are fire-and-forget: transitions enqueue the latest
// state and continue immediately, a single worker persists it, and a
// failed save is logged and dropped. In-memory state stays the source
// of truth until the next successful write.
type Writer struct {
	store  Store
	logger *zap.Logger

	mu      sync.Mutex
	pending *models.AppState
	kick    chan struct{}

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool

	saveTimeout time.Duration
}

// NewWriter builds a writer for the given backend.
func NewWriter(store Store, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		store:       store,
		logger:      logger,
		kick:        make(chan struct{}, 1),
		saveTimeout: 5 * time.Second,
	}
}

// Start begins the background worker. Safe to call once.
func (w *Writer) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.worker()
	w.started = true
}

// Stop shuts the worker down and flushes any still-pending snapshot
// synchronously so a clean exit never loses the last transition.
func (w *Writer) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.mu.Unlock()
	w.wg.Wait()
	w.flush(context.Background())
}

// Enqueue replaces the pending snapshot with the given state. Older
// unsaved snapshots are coalesced away; only the newest matters.
func (w *Writer) Enqueue(state *models.AppState) {
	w.mu.Lock()
	w.pending = state
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *Writer) worker() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.kick:
			w.flush(w.ctx)
		}
	}
}

func (w *Writer) flush(ctx context.Context) {
	w.mu.Lock()
	state := w.pending
	w.pending = nil
	w.mu.Unlock()

	if state == nil {
		return
	}

	saveCtx, cancel := context.WithTimeout(ctx, w.saveTimeout)
	defer cancel()
	if err := w.store.Save(saveCtx, state); err != nil {
		w.logger.Warn("snapshot save failed, state kept in memory only", zap.Error(err))
	}
}
