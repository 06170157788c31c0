package mcp

import (
	"context"
	"log/slog"

	"github.com/rgeller/seminargrid/internal/domain/catalog"
	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GridService defines grid configuration operations needed by MCP.
type GridService interface {
	Current() grid.Config
	Apply(ctx context.Context, cfg grid.Config) error
	ApplyPreset(ctx context.Context, key string) error
	SetZoom(ctx context.Context, id grid.ZoomID) (grid.ZoomLevel, error)
	Zoom() grid.ZoomLevel
}

// PlanService defines placement operations needed by MCP.
type PlanService interface {
	Add(ctx context.Context, req plan.AddRequest) (*plan.Item, error)
	Move(ctx context.Context, req plan.MoveRequest) (*plan.Item, error)
	Resize(ctx context.Context, req plan.ResizeRequest) (*plan.Item, error)
	Delete(ctx context.Context, day, uid string) error
	Clear(ctx context.Context)
	Items(day string) ([]plan.Item, error)
	DayMinutes(day string) (int, error)
	Export() plan.Envelope
	Import(ctx context.Context, env plan.Envelope) error
}

// MetaService defines plan header operations needed by MCP.
type MetaService interface {
	Set(ctx context.Context, m plan.Meta) error
	Get(ctx context.Context) (plan.Meta, error)
}

// CatalogService defines method catalog operations needed by MCP.
type CatalogService interface {
	Put(ctx context.Context, req catalog.PutRequest) (*catalog.Entry, error)
	Get(ctx context.Context, id string) (*catalog.Entry, error)
	List(ctx context.Context) ([]catalog.Entry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Grid    GridService
	Plan    PlanService
	Meta    MetaService
	Catalog CatalogService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "seminargrid",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
