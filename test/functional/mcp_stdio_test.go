package functional_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// stdioSession wraps an MCP client session against the compiled binary.
type stdioSession struct {
	session *sdkmcp.ClientSession
	cancel  context.CancelFunc
}

func newStdioSession(t *testing.T) *stdioSession {
	t.Helper()

	binaryPath := "./bin/seminargrid"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/seminargrid"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'make build' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"SEMINARGRID_TRANSPORT=stdio",
		"SEMINARGRID_DB_PATH=:memory:",
	)

	transport := &sdkmcp.CommandTransport{Command: cmd}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		cancel()
	})

	return &stdioSession{session: session, cancel: cancel}
}

func TestStdio_ToolDiscovery(t *testing.T) {
	s := newStdioSession(t)

	tools, err := s.session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, expected := range []string{
		"add_item", "move_item", "resize_item", "delete_item", "clear_plan",
		"get_plan", "get_day", "configure_grid", "get_grid", "set_zoom",
		"list_presets", "apply_preset", "export_plan", "import_plan",
		"put_catalog_entry", "get_catalog_entry", "list_catalog_entries",
		"set_plan_meta", "get_plan_meta",
	} {
		require.True(t, names[expected], "missing tool %s", expected)
	}
}

func TestStdio_PlaceItem(t *testing.T) {
	s := newStdioSession(t)

	res, err := s.session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "add_item",
		Arguments: map[string]any{
			"day":          "Montag",
			"start_min":    540,
			"duration_min": 60,
			"title":        "Workshop",
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool error: %s", toolText(res))

	var placed itemPayload
	require.NoError(t, json.Unmarshal([]byte(toolText(res)), &placed))
	require.Equal(t, 540, placed.Item.StartMin)
	require.Equal(t, 600, placed.Item.EndMin)
}
