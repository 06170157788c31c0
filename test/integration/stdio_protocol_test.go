package integration_test

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// TestStdioProtocolCompliance verifies the server works correctly over stdio
// transport using the official MCP SDK client. This catches protocol issues
// that in-process tests might miss.
func TestStdioProtocolCompliance(t *testing.T) {
	binaryPath := "./bin/seminargrid"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/seminargrid"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'make build' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"SEMINARGRID_TRANSPORT=stdio",
		"SEMINARGRID_DB_PATH=:memory:",
	)

	transport := &sdkmcp.CommandTransport{Command: cmd}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "compliance-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	require.NoError(t, err)
	defer session.Close()

	// Tool discovery
	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, tools.Tools)

	// Resource discovery and read
	resources, err := session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, resources.Resources)

	doc, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{
		URI: "seminargrid://docs/envelope",
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc.Contents)

	// A full tool round-trip
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name: "get_grid",
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
}
