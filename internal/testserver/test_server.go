package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rgeller/seminargrid/internal/domain/catalog"
	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/rgeller/seminargrid/internal/mcp"
	"github.com/rgeller/seminargrid/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// TestServer is a fully wired server over a per-test in-memory database,
// exposed through the plain JSON-RPC HTTP bridge.
type TestServer struct {
	Server  *httptest.Server
	MCP     *sdkmcp.Server
	DB      *sqlite.DB
	Grid    *grid.Service
	Plan    *plan.Service
	Meta    *plan.MetaService
	Catalog *catalog.Service
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	gridRepo := sqlite.NewGridRepository(db)
	planRepo := sqlite.NewPlanRepository(db)
	catalogRepo := sqlite.NewCatalogRepository(db)
	metaRepo := sqlite.NewMetaRepository(db)

	gridSvc := grid.NewService(gridRepo, nil)
	catalogSvc := catalog.NewService(catalogRepo, nil)
	planSvc := plan.NewService(gridSvc, planRepo, catalogSvc, nil)
	metaSvc := plan.NewMetaService(metaRepo, nil)
	gridSvc.BindPlan(planSvc)

	ctx := context.Background()
	require.NoError(t, gridSvc.Load(ctx))
	require.NoError(t, planSvc.Load(ctx))

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Grid:    gridSvc,
			Plan:    planSvc,
			Meta:    metaSvc,
			Catalog: catalogSvc,
		},
	})

	server := httptest.NewServer(mcp.NewHTTPHandler(mcpServer, nil))

	ts := &TestServer{
		Server:  server,
		MCP:     mcpServer,
		DB:      db,
		Grid:    gridSvc,
		Plan:    planSvc,
		Meta:    metaSvc,
		Catalog: catalogSvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
