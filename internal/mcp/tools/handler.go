package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToolHandler adapts one dispatcher tool to the mcp-go handler signature.
// Caller mistakes come back as error results the agent can read and correct;
// upstream failures are returned as errors.
type ToolHandler struct {
	Name       string
	Dispatcher *Dispatcher
}

func (h *ToolHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Dispatcher.Call(ctx, h.Name, req.GetArguments())
	if err != nil {
		switch KindOf(err) {
		case KindInvalidParams, KindMethodNotFound, KindInvalidRequest:
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, err
	}
	return result, nil
}
