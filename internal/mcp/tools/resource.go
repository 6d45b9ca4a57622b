package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ExportURITemplate = "biogrid://export/{biogrid_ids}"
	ExportMIMEType    = "application/json"

	exportURIPrefix = "biogrid://export/"
)

// ExportResource serves edge lists addressed by a comma separated id set,
// e.g. biogrid://export/111,222. It is a read-only alias of export_edge_list.
type ExportResource struct {
	Dispatcher *Dispatcher
}

// ReadResource is the mcp-go handler. Malformed URIs are also marked as
// server.ErrResourceNotFound so the runtime does not report them as internal
// errors.
func (r *ExportResource) ReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	contents, err := r.Read(ctx, req.Params.URI)
	if err != nil && KindOf(err) == KindInvalidRequest {
		return nil, fmt.Errorf("%w: %w", server.ErrResourceNotFound, err)
	}
	return contents, err
}

func (r *ExportResource) Read(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	ids, err := ParseExportURI(uri)
	if err != nil {
		return nil, err
	}
	payload, err := r.Dispatcher.Invoke(ctx, ToolExportEdgeList, map[string]any{
		"biogrid_ids":      ids,
		"interaction_type": string(TypeAll),
	})
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: ExportMIMEType, Text: string(payload)},
	}, nil
}

// ParseExportURI extracts the id set from an export resource URI.
func ParseExportURI(uri string) ([]string, error) {
	rest, ok := strings.CutPrefix(uri, exportURIPrefix)
	if !ok || rest == "" || strings.ContainsAny(rest, "/?#") {
		return nil, invalidRequest("resource URI %q does not match %s", uri, ExportURITemplate)
	}
	decoded, err := url.PathUnescape(rest)
	if err != nil {
		return nil, invalidRequest("resource URI %q: %v", uri, err)
	}
	ids := make([]string, 0)
	for _, id := range strings.Split(decoded, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, invalidRequest("resource URI %q names no identifiers", uri)
	}
	return ids, nil
}
