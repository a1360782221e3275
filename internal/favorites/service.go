// Package favorites manages the user's saved topics with search, sorting
// and a single-level undo for removals.
package favorites

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/abrar/astrolearn/internal/store"
)

// Service wraps the favorites repository with app-level rules: duplicate
// names are rejected, and the most recent removal can be undone.
type Service struct {
	repo store.FavoriteRepo

	mu          sync.Mutex
	lastRemoved *store.Favorite
}

// NewService creates a favorites service over the given repository.
func NewService(repo store.FavoriteRepo) *Service {
	return &Service{repo: repo}
}

// Add saves a topic as a favorite. Returns false when a favorite with
// the same name already exists.
func (s *Service) Add(ctx context.Context, name, explanation string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("favorite name is empty")
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("check existing favorite: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	fav := &store.Favorite{Name: name, Explanation: explanation}
	if err := s.repo.Insert(ctx, fav); err != nil {
		return false, fmt.Errorf("save favorite: %w", err)
	}
	return true, nil
}

// Remove deletes a favorite and parks it in the undo slot. Each removal
// replaces whatever the slot held before.
func (s *Service) Remove(ctx context.Context, fav store.Favorite) error {
	if err := s.repo.Delete(ctx, fav.ID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.mu.Lock()
	removed := fav
	s.lastRemoved = &removed
	s.mu.Unlock()
	return nil
}

// Undo restores the most recently removed favorite. Returns (nil, nil)
// when there is nothing to undo. The restored favorite gets a fresh ID
// and keeps its original date.
func (s *Service) Undo(ctx context.Context) (*store.Favorite, error) {
	s.mu.Lock()
	removed := s.lastRemoved
	s.lastRemoved = nil
	s.mu.Unlock()

	if removed == nil {
		return nil, nil
	}

	restored := &store.Favorite{
		Name:        removed.Name,
		Explanation: removed.Explanation,
		DateAdded:   removed.DateAdded,
	}
	if err := s.repo.Insert(ctx, restored); err != nil {
		return nil, fmt.Errorf("restore favorite: %w", err)
	}
	return restored, nil
}

// CanUndo reports whether a removal is parked in the undo slot.
func (s *Service) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRemoved != nil
}

// List returns favorites matching the query (name or explanation,
// case-insensitive substring) in the given sort order. An empty query
// matches everything.
func (s *Service) List(ctx context.Context, query string, sort store.Sort) ([]store.Favorite, error) {
	favs, err := s.repo.List(ctx, store.ListOpts{Query: strings.TrimSpace(query), Sort: sort})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

// Count returns the number of saved favorites.
func (s *Service) Count(ctx context.Context) (int, error) {
	favs, err := s.repo.List(ctx, store.ListOpts{})
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return len(favs), nil
}

// ChangedMsg is broadcast through the UI whenever the favorites set
// changes, carrying the new total.
type ChangedMsg struct {
	Count int
}

// Get looks up a favorite by name. Returns (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, name string) (*store.Favorite, error) {
	fav, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return fav, nil
}
