package autodraw

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/internal/store"
	"github.com/askiada/go-autodraw/pkg/autodraw/measure"
	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

// Fetcher retrieves raw automation payloads from the backend.
type Fetcher interface {
	StartAutomation(ctx context.Context, token string, projectID int) ([]byte, error)
	ContinueAutomation(ctx context.Context, token string, projectID int) ([]byte, error)
}

// TokenSource provides the bearer token of the active session.
type TokenSource interface {
	Token() (string, bool)
}

// Synchronizer caches the state of the active project and keeps it in sync with the
// backend. Start, continue and rendering of the same project must be sequenced by the
// caller.
type Synchronizer struct {
	fetcher      Fetcher
	tokens       TokenSource
	store        store.ProjectStore
	measure      measure.Measure
	logger       *slog.Logger
	fetchTimeout time.Duration
}

// New creates a synchronizer with no active project.
func New(fetcher Fetcher, tokens TokenSource, opts ...Option) (*Synchronizer, error) {
	if fetcher == nil {
		return nil, ErrFetcherMustBeSet
	}

	if tokens == nil {
		return nil, ErrTokensMustBeSet
	}

	s := &Synchronizer{
		fetcher:      fetcher,
		tokens:       tokens,
		store:        store.NewMemoryStore(),
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	return s, nil
}

// StartProject performs a full fetch and makes its result the baseline of projectID. Any
// state cached for another project is discarded.
func (s *Synchronizer) StartProject(ctx context.Context, projectID int) (model.ProjectState, error) {
	if projectID <= 0 {
		return model.ProjectState{}, errors.Wrapf(ErrInvalidProjectID, "start project %d", projectID)
	}

	raw, err := s.fetch(ctx, measure.OperationStart, projectID, s.fetcher.StartAutomation)
	if err != nil {
		return model.ProjectState{}, err
	}

	state, err := decodeStart(projectID, raw)
	if err != nil {
		s.logger.Warn("start payload rejected", "project_id", projectID, "error", err)
		return model.ProjectState{}, errors.Wrapf(err, "start project %d", projectID)
	}

	s.store.Replace(state)

	s.logger.Info("project started",
		"project_id", projectID,
		"steps", state.Config.Len(),
		"current_step", state.Progress.CurrentStep,
		"items", len(state.Record.Geometry),
	)

	return state.Clone(), nil
}

// ContinueProject performs an incremental fetch and merges it into the baseline of
// projectID. The configuration is never changed. On any error the baseline is untouched.
func (s *Synchronizer) ContinueProject(ctx context.Context, projectID int) (model.ProjectState, error) {
	if _, ok := s.store.Get(projectID); !ok {
		return model.ProjectState{}, errors.Wrapf(ErrNoActiveProject, "continue project %d", projectID)
	}

	raw, err := s.fetch(ctx, measure.OperationContinue, projectID, s.fetcher.ContinueAutomation)
	if err != nil {
		return model.ProjectState{}, err
	}

	partial, err := decodeContinue(raw)
	if err != nil {
		s.logger.Warn("continue payload rejected", "project_id", projectID, "error", err)
		return model.ProjectState{}, errors.Wrapf(err, "continue project %d", projectID)
	}

	state, err := s.store.Update(projectID, func(current model.ProjectState) (model.ProjectState, error) {
		return current.Merge(partial), nil
	})
	if err != nil {
		// another project was started while the fetch was in flight
		return model.ProjectState{}, errors.Wrapf(ErrNoActiveProject, "continue project %d", projectID)
	}

	s.logger.Info("project continued",
		"project_id", projectID,
		"current_step", state.Progress.CurrentStep,
		"current_substep", state.Progress.CurrentSubstep,
		"complete", state.Progress.IsComplete,
		"items", len(state.Record.Geometry),
	)

	return state.Clone(), nil
}

// State returns a copy of the baseline of projectID.
func (s *Synchronizer) State(projectID int) (model.ProjectState, bool) {
	return s.store.Get(projectID)
}

// Release drops the baseline, as when the session ends.
func (s *Synchronizer) Release() {
	s.store.Release()
}

type fetchFn func(ctx context.Context, token string, projectID int) ([]byte, error)

func (s *Synchronizer) fetch(ctx context.Context, operation string, projectID int, fn fetchFn) ([]byte, error) {
	token, ok := s.tokens.Token()
	if !ok || token == "" {
		return nil, errors.Wrapf(ErrNotAuthenticated, "%s project %d", operation, projectID)
	}

	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	var mt measure.Metric
	if s.measure != nil {
		mt = s.measure.AddMetric(operation)
	}

	start := time.Now()
	raw, err := fn(ctx, token, projectID)
	elapsed := time.Since(start)

	if err != nil {
		if mt != nil {
			mt.AddFailure(elapsed)
		}

		s.logger.Warn("fetch failed", "operation", operation, "project_id", projectID, "elapsed", elapsed, "error", err)

		return nil, newFetchError(operation, projectID, err)
	}

	if mt != nil {
		mt.AddDuration(elapsed)
	}

	s.logger.Debug("fetch done", "operation", operation, "project_id", projectID, "elapsed", elapsed, "bytes", len(raw))

	return raw, nil
}
