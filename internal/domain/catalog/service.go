package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/rgeller/seminargrid/internal/repository"
)

// EntryRepository persists catalog entries.
type EntryRepository interface {
	Put(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

// Service manages the method catalog and serves detail lookups for the
// placement engine.
type Service struct {
	entries EntryRepository
	logger  *slog.Logger
}

// NewService creates a catalog service.
func NewService(entries EntryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{entries: entries, logger: logger}
}

// PutRequest creates or replaces a catalog entry.
type PutRequest struct {
	ID              string
	Title           string
	DurationMinutes int
	Details         plan.Details
	RenderFragment  string
}

// Put stores an entry, generating an ID when none is given.
func (s *Service) Put(ctx context.Context, req PutRequest) (*Entry, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidEntry
	}
	if req.DurationMinutes < 0 {
		return nil, ErrInvalidEntry
	}

	entry := &Entry{
		ID:              req.ID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Details:         req.Details,
		RenderFragment:  req.RenderFragment,
		CreatedAt:       time.Now(),
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if err := s.entries.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("storing catalog entry: %w", err)
	}
	return entry, nil
}

// Get returns an entry by ID.
func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("getting catalog entry: %w", err)
	}
	return entry, nil
}

// List returns all entries.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.entries.List(ctx)
}

// Lookup implements plan.DetailSource. A missing entry or a repository
// failure both resolve to "absent": placement degrades to the details
// the caller supplied rather than failing.
func (s *Service) Lookup(ctx context.Context, sourceRef string) (plan.Details, bool) {
	entry, err := s.entries.Get(ctx, sourceRef)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("catalog lookup failed", "id", sourceRef, "error", err)
		}
		return plan.Details{}, false
	}
	return entry.Details, true
}
