package session

import (
	"context"
	"errors"
	"fmt"

	"craft-planner/core/pool"
	"craft-planner/core/request"
	coresession "craft-planner/core/session"
	"craft-planner/feature/calculator"

	"go.uber.org/zap"
)

// Pool edit modes.
const (
	ModeReplace = "replace"
	ModeAdd     = "add"
)

// ErrSnapshotsDisabled is returned when no storage client is configured.
var ErrSnapshotsDisabled = errors.New("session snapshots require object storage")

// PoolInput edits a session pool. Items uses the calculator text syntax and is merged with Pool.
type PoolInput struct {
	Items string             `json:"items,omitempty" example:"Log, 5; Planks, 2"`
	Pool  map[string]float64 `json:"pool,omitempty"`
	// Mode is replace (default) or add.
	Mode string `json:"mode,omitempty" example:"replace"`
}

// Service manages sessions.
type Service struct {
	store      coresession.Store
	snapshots  *coresession.Snapshots
	calculator *calculator.Service
	logger     *zap.Logger
}

// NewService creates a new session service. snapshots may be nil.
func NewService(store coresession.Store, snapshots *coresession.Snapshots, calc *calculator.Service, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		snapshots:  snapshots,
		calculator: calc,
		logger:     logger,
	}
}

// Create starts a new session.
func (s *Service) Create(ctx context.Context) (*coresession.Session, error) {
	return s.store.Create(ctx)
}

// Get returns a session.
func (s *Service) Get(ctx context.Context, id string) (*coresession.Session, error) {
	return s.store.Get(ctx, id)
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// UpdatePool applies in to the session pool.
func (s *Service) UpdatePool(ctx context.Context, id string, in PoolInput) (*coresession.Session, error) {
	if in.Mode != "" && in.Mode != ModeReplace && in.Mode != ModeAdd {
		return nil, fmt.Errorf("%w: unknown mode %s", request.ErrInvalidRequest, in.Mode)
	}

	edit, err := pool.FromMap(in.Pool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", request.ErrInvalidRequest, err)
	}
	if in.Items != "" {
		cat, err := s.calculator.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		parsed, _, err := request.ParsePool(in.Items, cat)
		if err != nil {
			return nil, err
		}
		edit = edit.Credit(parsed.Map())
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := edit
	if in.Mode == ModeAdd {
		next = current.Pool.Credit(edit.Map())
	}
	return s.store.SavePool(ctx, id, next)
}

// Calculate resolves in against the session pool and stores the resulting pool.
// The pool given in in is ignored.
func (s *Service) Calculate(ctx context.Context, id string, in calculator.Input) (*calculator.Output, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Pool = current.Pool.Map()

	out, err := s.calculator.Calculate(ctx, in)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.SavePool(ctx, id, out.Pool); err != nil {
		return nil, fmt.Errorf("failed to save session pool: %w", err)
	}
	return out, nil
}

// Export writes a snapshot of the session and returns its object key.
func (s *Service) Export(ctx context.Context, id string) (string, error) {
	if s.snapshots == nil {
		return "", ErrSnapshotsDisabled
	}
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.snapshots.Export(ctx, current)
}

// Import replaces the session pool with its stored snapshot.
func (s *Service) Import(ctx context.Context, id string) (*coresession.Session, error) {
	if s.snapshots == nil {
		return nil, ErrSnapshotsDisabled
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	p, err := s.snapshots.Import(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.store.SavePool(ctx, id, p)
}
