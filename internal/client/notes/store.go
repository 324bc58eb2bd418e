package notes

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dcastano/notas-cli/internal/client/models"
)

// API is the slice of the Service the Store drives. Split out so tests can
// substitute a fake.
type API interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, title, content string) (*models.Note, error)
	UpdateByID(ctx context.Context, id string, upd Update) (*models.Note, error)
	DeleteByID(ctx context.Context, id string) error
}

// Store keeps the current list of notes for the UI and reloads it after
// every mutation. Each reload takes a generation number before fetching and
// installs its result only if no newer reload has started since, so a slow
// response can never clobber a fresher list.
type Store struct {
	api API

	gen atomic.Uint64

	mu    sync.Mutex
	notes []models.Note
}

func NewStore(api API) *Store {
	return &Store{api: api, notes: []models.Note{}}
}

// Reload fetches the list. Stale results (a newer Reload started while this
// one was in flight) are dropped silently.
func (s *Store) Reload(ctx context.Context) error {
	g := s.gen.Add(1)

	fetched, err := s.api.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if g != s.gen.Load() {
		return nil
	}
	s.notes = fetched
	return nil
}

// Notes returns a copy of the current list.
func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Create adds a note and reloads the list.
func (s *Store) Create(ctx context.Context, title, content string) (*models.Note, error) {
	n, err := s.api.Create(ctx, title, content)
	if err != nil {
		return nil, err
	}
	return n, s.Reload(ctx)
}

// Update applies a partial update and reloads the list.
func (s *Store) Update(ctx context.Context, id string, upd Update) (*models.Note, error) {
	n, err := s.api.UpdateByID(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	return n, s.Reload(ctx)
}

// Delete removes a note and reloads the list.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.Reload(ctx)
}
