package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rgeller/seminargrid/internal/repository"
)

// Meta is the plan's header data, shown on printouts.
type Meta struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Number  string `json:"number"`
	Contact string `json:"contact"`
}

// MetaService stores the plan header.
type MetaService struct {
	repo   MetaRepository
	logger *slog.Logger
}

// NewMetaService creates a meta service.
func NewMetaService(repo MetaRepository, logger *slog.Logger) *MetaService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetaService{repo: repo, logger: logger}
}

// Set replaces the plan header.
func (s *MetaService) Set(ctx context.Context, m Meta) error {
	if err := s.repo.SaveMeta(ctx, m); err != nil {
		return fmt.Errorf("saving plan meta: %w", err)
	}
	return nil
}

// Get returns the plan header; an empty one when nothing was stored.
func (s *MetaService) Get(ctx context.Context) (Meta, error) {
	m, err := s.repo.LoadMeta(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Meta{}, nil
		}
		return Meta{}, fmt.Errorf("loading plan meta: %w", err)
	}
	return m, nil
}
