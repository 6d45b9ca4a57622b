package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/biogrid-mcp/internal/mcp/tools"
)

const (
	ServerName    = "biogrid-mcp"
	ServerVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type ResourceAdapter interface {
	ReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

// ToolDefinitions returns the schemas advertised to clients, keyed by tool name.
func ToolDefinitions() map[string]mcp.Tool {
	interactionTool := func(name, title, description string) mcp.Tool {
		return mcp.NewTool(name,
			mcp.WithDescription(description),
			mcp.WithTitleAnnotation(title),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("gene",
				mcp.Required(),
				mcp.Description("Gene symbol (e.g., 'TP53') or numeric gene identifier (e.g., '7157')"),
			),
			mcp.WithString("taxon_id",
				mcp.Description("Optional: NCBI taxonomy identifier to restrict results (e.g., '9606' for human)"),
			),
			mcp.WithNumber("max_results",
				mcp.Description("Maximum number of interactions to return (default: 500)"),
				mcp.Min(1),
				mcp.Max(10000),
			),
		)
	}

	return map[string]mcp.Tool{
		tools.ToolGeneInteractions: interactionTool(tools.ToolGeneInteractions,
			"Gene interactions",
			"Retrieve all physical and genetic interactions reported in BioGRID for a gene. Returns edges with partner symbols, experimental system and PubMed identifier."),
		tools.ToolPhysicalInteractions: interactionTool(tools.ToolPhysicalInteractions,
			"Physical interactions",
			"Retrieve only physical (protein-protein) interactions for a gene from BioGRID, excluding inter-species interactions."),
		tools.ToolGeneticInteractions: interactionTool(tools.ToolGeneticInteractions,
			"Genetic interactions",
			"Retrieve only genetic interactions (e.g., synthetic lethality, dosage rescue) for a gene from BioGRID, excluding inter-species interactions."),
		tools.ToolSearchGenes: mcp.NewTool(tools.ToolSearchGenes,
			mcp.WithDescription("Search the BioGRID gene catalog by symbol or synonym. Returns BioGRID identifiers, official symbols, synonyms and organism."),
			mcp.WithTitleAnnotation("Search genes"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Gene symbol or synonym to search for (e.g., 'PIK3R1')"),
			),
			mcp.WithString("taxon_id",
				mcp.Description("Optional: NCBI taxonomy identifier to restrict results"),
			),
			mcp.WithNumber("max_results",
				mcp.Description("Maximum number of genes to return (default: 25)"),
				mcp.Min(1),
				mcp.Max(100),
			),
		),
		tools.ToolExportEdgeList: mcp.NewTool(tools.ToolExportEdgeList,
			mcp.WithDescription("Export the interaction graph strictly among a set of BioGRID gene identifiers as a [source, target] edge list, suitable for graph tooling."),
			mcp.WithTitleAnnotation("Export edge list"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithArray("biogrid_ids",
				mcp.Required(),
				mcp.Description("Non-empty list of numeric BioGRID gene identifiers (e.g., ['111', '222'])"),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithString("interaction_type",
				mcp.Description("Restrict edges to one interaction category (default: all)"),
				mcp.Enum(string(tools.TypePhysical), string(tools.TypeGenetic), string(tools.TypeAll)),
			),
		),
	}
}

// ExportTemplate is the resource template aliasing export_edge_list.
func ExportTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(tools.ExportURITemplate, "BioGRID edge list",
		mcp.WithTemplateDescription("Interaction edge list among a comma separated set of BioGRID gene identifiers"),
		mcp.WithTemplateMIMEType(tools.ExportMIMEType),
	)
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	toolDefinitions := ToolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			tool = mcp.NewTool(name)
		}
		mcpServer.AddTool(tool, adapter.ToolAdapter)
	}
	if cfg.ExportResource != nil {
		mcpServer.AddResourceTemplate(ExportTemplate(), cfg.ExportResource.ReadResource)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout until EOF or a signal.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
