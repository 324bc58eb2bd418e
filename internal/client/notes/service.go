// Package notes is the data-access layer for the note resource: CRUD against
// the backend plus the client-side search and statistics the dashboard
// surfaces use. All wire translation is delegated to the models package so
// no call path can forget the rename.
package notes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dcastano/notas-cli/internal/client/models"
	"github.com/dcastano/notas-cli/internal/logging"
)

const basePath = "/notas"

var (
	ErrTitleRequired   = errors.New("title must not be empty")
	ErrContentRequired = errors.New("content must not be empty")
)

// transport is the slice of the API client this service needs.
type transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Update carries the fields of a partial note update. Nil means "leave the
// field alone"; it is never sent to the server.
type Update struct {
	Title   *string
	Content *string
}

// Stats summarizes the user's notes by creation time.
type Stats struct {
	Total    int
	Recent   int // created in the last 24h
	ThisWeek int // created in the last 7 days
}

type Service struct {
	client transport
	logger logging.Logger
	now    func() time.Time
}

func NewService(client transport, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{client: client, logger: logger, now: time.Now}
}

// List fetches all notes for the current user. Zero notes yields an empty
// slice, never nil.
func (s *Service) List(ctx context.Context) ([]models.Note, error) {
	var wires []models.NoteWire
	if err := s.client.Get(ctx, basePath, &wires); err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	result := make([]models.Note, 0, len(wires))
	for _, w := range wires {
		n, err := w.ToNote()
		if err != nil {
			return nil, fmt.Errorf("listing notes: %w", err)
		}
		result = append(result, n)
	}
	return result, nil
}

// Get fetches a single note by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Note, error) {
	var w models.NoteWire
	if err := s.client.Get(ctx, basePath+"/"+id, &w); err != nil {
		return nil, fmt.Errorf("fetching note %s: %w", id, err)
	}
	n, err := w.ToNote()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create posts a new note. Title and content must be non-empty after
// trimming; that is checked here as well as by the form validators.
func (s *Service) Create(ctx context.Context, title, content string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	var w models.NoteWire
	if err := s.client.Post(ctx, basePath, models.NewCreateNoteRequest(title, content), &w); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	n, err := w.ToNote()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateByID sends a partial update. Only the fields present in upd are
// forwarded, so the unspecified field can never be blanked by accident.
func (s *Service) UpdateByID(ctx context.Context, id string, upd Update) (*models.Note, error) {
	var w models.NoteWire
	req := models.NewUpdateNoteRequest(upd.Title, upd.Content)
	if err := s.client.Put(ctx, basePath+"/"+id, req, &w); err != nil {
		return nil, fmt.Errorf("updating note %s: %w", id, err)
	}
	n, err := w.ToNote()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// DeleteByID removes a note. Deleting an already-deleted id fails with the
// transport's not-found error; the server does not make this idempotent.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, basePath+"/"+id); err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	return nil
}

// Search filters the full fetched list by a case-insensitive substring match
// against title or content. The backend has no search endpoint.
func (s *Service) Search(ctx context.Context, query string) ([]models.Note, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	if q == "" {
		return all, nil
	}

	result := make([]models.Note, 0, len(all))
	for _, n := range all {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			result = append(result, n)
		}
	}
	return result, nil
}

// Recent returns up to limit notes ordered by last update, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.Note, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// GetStats derives counters from the creation timestamps of the fetched
// list, relative to the current time.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	all, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := s.now()
	dayAgo := now.Add(-24 * time.Hour)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	st := Stats{Total: len(all)}
	for _, n := range all {
		if n.CreatedAt.After(dayAgo) {
			st.Recent++
		}
		if n.CreatedAt.After(weekAgo) {
			st.ThisWeek++
		}
	}
	return st, nil
}
