package mcp

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewHTTPHandler creates a simple HTTP handler that bridges single
// JSON-RPC requests onto the SDK server.
func NewHTTPHandler(server *sdkmcp.Server, logger *slog.Logger) http.Handler {
	return &httpHandler{
		server: server,
		logger: logger,
	}
}

type httpHandler struct {
	server *sdkmcp.Server
	logger *slog.Logger
}

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	Error   *jsonrpcError `json:"error,omitempty"`
	ID      any           `json:"id,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, jsonrpc.CodeParseError, "Parse error", nil)
		return
	}

	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, jsonrpc.CodeParseError, "Parse error", nil)
		return
	}

	id, err := jsonrpc.MakeID(req.ID)
	if err != nil {
		h.writeError(w, jsonrpc.CodeInvalidRequest, fmt.Sprintf("Invalid request id: %v", err), nil)
		return
	}

	// Each request runs over a fresh in-memory session against the SDK server
	t1, t2 := sdkmcp.NewInMemoryTransports()

	session, err := h.server.Connect(r.Context(), t1, nil)
	if err != nil {
		h.writeError(w, jsonrpc.CodeInternalError, fmt.Sprintf("Internal error: %v", err), req.ID)
		return
	}
	defer session.Close()

	conn, err := t2.Connect(r.Context())
	if err != nil {
		h.writeError(w, jsonrpc.CodeInternalError, fmt.Sprintf("Internal error: %v", err), req.ID)
		return
	}
	defer conn.Close()

	if err := conn.Write(r.Context(), &jsonrpc.Request{
		ID:     id,
		Method: req.Method,
		Params: req.Params,
	}); err != nil {
		h.writeError(w, jsonrpc.CodeInternalError, fmt.Sprintf("Internal error: %v", err), req.ID)
		return
	}

	// Notifications get no response from the server
	if !id.IsValid() {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	// The server may emit its own notifications before answering; skip
	// everything that is not the response to our request.
	for {
		msg, err := conn.Read(r.Context())
		if err != nil {
			h.writeError(w, jsonrpc.CodeInternalError, fmt.Sprintf("Internal error: %v", err), req.ID)
			return
		}
		resp, ok := msg.(*jsonrpc.Response)
		if !ok {
			continue
		}

		wire, err := jsonrpc.EncodeMessage(resp)
		if err != nil {
			h.writeError(w, jsonrpc.CodeInternalError, fmt.Sprintf("Internal error: %v", err), req.ID)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(wire)
		return
	}
}

func (h *httpHandler) writeError(w http.ResponseWriter, code int, message string, id any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // JSON-RPC errors are still 200 OK
	json.NewEncoder(w).Encode(jsonrpcResponse{
		JSONRPC: "2.0",
		Error: &jsonrpcError{
			Code:    code,
			Message: message,
		},
		ID: id,
	})
}
