package mocks

import (
	"context"

	"github.com/rgeller/seminargrid/internal/domain/catalog"
	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/stretchr/testify/mock"
)

// PlanRepository is a mock for plan.PlanRepository.
type PlanRepository struct {
	mock.Mock
}

func (m *PlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PlanRepository) Load(ctx context.Context) (*plan.Plan, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).(*plan.Plan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// GridRepository is a mock for grid.ConfigRepository.
type GridRepository struct {
	mock.Mock
}

func (m *GridRepository) SaveConfig(ctx context.Context, cfg grid.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *GridRepository) LoadConfig(ctx context.Context) (grid.Config, error) {
	args := m.Called(ctx)
	if cfg, ok := args.Get(0).(grid.Config); ok {
		return cfg, args.Error(1)
	}
	return grid.Config{}, args.Error(1)
}

// CatalogRepository is a mock for catalog.EntryRepository.
type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) Put(ctx context.Context, entry *catalog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *CatalogRepository) Get(ctx context.Context, id string) (*catalog.Entry, error) {
	args := m.Called(ctx, id)
	if entry, ok := args.Get(0).(*catalog.Entry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogRepository) List(ctx context.Context) ([]catalog.Entry, error) {
	args := m.Called(ctx)
	if entries, ok := args.Get(0).([]catalog.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

// MetaRepository is a mock for plan.MetaRepository.
type MetaRepository struct {
	mock.Mock
}

func (m *MetaRepository) SaveMeta(ctx context.Context, meta plan.Meta) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MetaRepository) LoadMeta(ctx context.Context) (plan.Meta, error) {
	args := m.Called(ctx)
	if meta, ok := args.Get(0).(plan.Meta); ok {
		return meta, args.Error(1)
	}
	return plan.Meta{}, args.Error(1)
}
