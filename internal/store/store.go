// Package store is the application state machine. It owns the single
// AppState aggregate and exposes it exclusively through the named
// transition catalogue and derived read views; no caller ever sees or
// mutates internal state directly. Commands run to completion one at a
// time, and every successful transition hands a session-free copy of
// the state to the snapshot saver without blocking.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hedef100/academia-core/internal/models"
	"github.com/hedef100/academia-core/internal/snapshot"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// Loader restores a previously saved state. Backends from the
// snapshot package satisfy it.
type Loader interface {
	Load(ctx context.Context) (*models.AppState, error)
}

// Saver receives a session-free state copy after every successful
// transition. Saves must not block; the snapshot writer satisfies it.
type Saver interface {
	Enqueue(state *models.AppState)
}

// Options configures a Store.
type Options struct {
	Saver     Saver
	Validator *validator.Validate
	Logger    *zap.Logger

	// AdminAccessCodeHash is the bcrypt hash admin registration codes
	// are checked against. Empty disables admin self-registration.
	AdminAccessCodeHash string
}

// Store holds the application state behind a mutex so transitions
// never interleave.
type Store struct {
	mu    sync.Mutex
	state *models.AppState

	saver               Saver
	validator           *validator.Validate
	logger              *zap.Logger
	adminAccessCodeHash string

	now   func() time.Time
	newID func() string
}

// Open restores state from the loader, seeding a default state on
// first run. A nil loader always starts from the seed.
func Open(ctx context.Context, loader Loader, opts Options) (*Store, error) {
	if opts.Validator == nil {
		opts.Validator = validator.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Store{
		saver:               opts.Saver,
		validator:           opts.Validator,
		logger:              opts.Logger,
		adminAccessCodeHash: opts.AdminAccessCodeHash,
		now:                 func() time.Time { return time.Now().UTC() },
		newID:               uuid.NewString,
	}

	if loader == nil {
		s.state = models.DefaultState(s.now())
		return s, nil
	}

	state, err := loader.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		s.state = models.DefaultState(s.now())
		s.logger.Info("no snapshot found, seeded default state")
	case err != nil:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load snapshot")
	default:
		state.Normalize()
		s.state = state
	}
	return s, nil
}

// finish records the transition outcome and, on success, hands a
// session-free state copy to the saver.
func (s *Store) finish(op string, err error) {
	s.record(op, err)
	if err != nil || s.saver == nil {
		return
	}
	s.saver.Enqueue(s.state.Clone())
}

// record bumps the transition counter without persisting. Used by
// operations that do not change durable state.
func (s *Store) record(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = appErrors.FromError(err).Code
		s.logger.Debug("transition rejected", zap.String("op", op), zap.String("code", outcome))
	}
	transitionsTotal.WithLabelValues(op, outcome).Inc()
}

// refreshSession re-points the session at the freshly stored user
// record after a user-list mutation so the session never serves stale
// profile data.
func (s *Store) refreshSession() {
	if s.state.CurrentUser == nil {
		return
	}
	for i := range s.state.Users {
		if s.state.Users[i].ID == s.state.CurrentUser.ID {
			fresh := s.state.Users[i].Clone()
			s.state.CurrentUser = &fresh
			return
		}
	}
	s.state.CurrentUser = nil
}

func (s *Store) userIndex(id string) int {
	for i := range s.state.Users {
		if s.state.Users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) validate(req interface{}) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return nil
}
