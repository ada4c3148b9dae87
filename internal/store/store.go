// Package store keeps the baseline state of the active project.
package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

// ProjectStore holds the cached state of at most one project at a time.
type ProjectStore interface {
	// Get returns a copy of the state cached for projectID.
	Get(projectID int) (model.ProjectState, bool)
	// Replace caches state as the new baseline, discarding any other project.
	Replace(state model.ProjectState)
	// Update swaps the cached state of projectID with the result of fn. fn runs under the
	// store lock and must not block. Nothing changes when fn returns an error.
	Update(projectID int, fn func(model.ProjectState) (model.ProjectState, error)) (model.ProjectState, error)
	// Release drops the cached state.
	Release()
}

// ErrProjectNotFound is returned by Update when no state is cached for the project.
var ErrProjectNotFound = errors.New("project not found in store")

type MemoryStore struct {
	lock    sync.RWMutex
	active  bool
	current model.ProjectState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(projectID int) (model.ProjectState, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if !s.active || s.current.ProjectID != projectID {
		return model.ProjectState{}, false
	}

	return s.current.Clone(), true
}

func (s *MemoryStore) Replace(state model.ProjectState) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.current = state.Clone()
	s.active = true
}

func (s *MemoryStore) Update(
	projectID int,
	fn func(model.ProjectState) (model.ProjectState, error),
) (model.ProjectState, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.active || s.current.ProjectID != projectID {
		return model.ProjectState{}, ErrProjectNotFound
	}

	next, err := fn(s.current.Clone())
	if err != nil {
		return model.ProjectState{}, err
	}

	s.current = next.Clone()

	return next, nil
}

func (s *MemoryStore) Release() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.current = model.ProjectState{}
	s.active = false
}

var _ ProjectStore = (*MemoryStore)(nil)
