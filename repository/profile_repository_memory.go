package repository

import (
	"context"
	"sync"

	"finsage/domain"
)

// ProfileRepositoryMemory is an in-memory implementation of ProfileRepository.
type ProfileRepositoryMemory struct {
	mu          sync.RWMutex
	finances    map[string]domain.Finances
	preferences map[string]domain.Preferences
}

// NewProfileRepositoryMemory creates a new in-memory profile repository.
func NewProfileRepositoryMemory() *ProfileRepositoryMemory {
	return &ProfileRepositoryMemory{
		finances:    make(map[string]domain.Finances),
		preferences: make(map[string]domain.Preferences),
	}
}

func (r *ProfileRepositoryMemory) GetFinances(_ context.Context, userID string) (domain.Finances, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.finances[userID]
	if !ok {
		return domain.Finances{}, ErrNotFound
	}
	return f.Clone(), nil
}

// SaveFinances replaces the whole finances document.
func (r *ProfileRepositoryMemory) SaveFinances(_ context.Context, userID string, finances domain.Finances) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finances[userID] = finances.Clone()
	return nil
}

func (r *ProfileRepositoryMemory) GetPreferences(_ context.Context, userID string) (domain.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.preferences[userID]
	if !ok {
		return domain.Preferences{}, ErrNotFound
	}
	return p, nil
}

func (r *ProfileRepositoryMemory) SavePreferences(_ context.Context, userID string, prefs domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.preferences[userID] = prefs
	return nil
}
