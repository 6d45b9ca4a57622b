package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/biogrid-mcp/internal/biogrid"
	"github.com/roivaz/biogrid-mcp/internal/logging"
)

const (
	ToolGeneInteractions     = "get_gene_interactions"
	ToolPhysicalInteractions = "get_physical_interactions"
	ToolGeneticInteractions  = "get_genetic_interactions"
	ToolSearchGenes          = "search_genes"
	ToolExportEdgeList       = "export_edge_list"
)

// Upstream is the read-only BioGRID handle the dispatcher calls into.
type Upstream interface {
	Interactions(ctx context.Context, params url.Values) ([]biogrid.Interaction, error)
	Genes(ctx context.Context, params url.Values) ([]biogrid.Gene, error)
}

type toolFunc func(ctx context.Context, args map[string]any) (any, error)

// Dispatcher routes a named tool invocation through its builder, one upstream
// call and its normalizer. It keeps no per-call state.
type Dispatcher struct {
	upstream Upstream
	validate *validator.Validate
	log      logging.Logger
	tools    map[string]toolFunc
}

func NewDispatcher(upstream Upstream, log logging.Logger) *Dispatcher {
	d := &Dispatcher{
		upstream: upstream,
		validate: newValidator(),
		log:      log.WithName("dispatcher"),
	}
	d.tools = map[string]toolFunc{
		ToolGeneInteractions:     d.interactions(TypeAll),
		ToolPhysicalInteractions: d.interactions(TypePhysical),
		ToolGeneticInteractions:  d.interactions(TypeGenetic),
		ToolSearchGenes:          d.searchGenes,
		ToolExportEdgeList:       d.exportEdgeList,
	}
	return d
}

// Names lists the registered tool names in sorted order.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.tools))
	for name := range d.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs a tool and wraps its JSON envelope as text content.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	payload, err := d.Invoke(ctx, name, args)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// Invoke runs a tool and returns its JSON envelope. Failures are *Error values.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) ([]byte, error) {
	fn, ok := d.tools[name]
	if !ok {
		return nil, methodNotFound(name)
	}

	start := time.Now()
	envelope, err := fn(ctx, args)
	if err != nil {
		if KindOf(err) == KindInternal {
			d.log.Error(err, "tool call failed", "tool", name, "elapsed", time.Since(start))
		} else {
			d.log.Debug("tool call rejected", "tool", name, "error", err.Error())
		}
		return nil, err
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, internalError(fmt.Errorf("encode %s result: %w", name, err))
	}
	d.log.Debug("tool call complete", "tool", name, "elapsed", time.Since(start), "bytes", len(payload))
	return payload, nil
}

func (d *Dispatcher) interactions(kind InteractionType) toolFunc {
	return func(ctx context.Context, raw map[string]any) (any, error) {
		var args InteractionArgs
		if err := bindArguments(d.validate, raw, &args); err != nil {
			return nil, err
		}
		params, err := interactionParams(args, kind)
		if err != nil {
			return nil, internalError(err)
		}
		rows, err := d.upstream.Interactions(ctx, params)
		if err != nil {
			return nil, internalError(err)
		}
		return normalizeInteractions(args.Gene, kind, rows), nil
	}
}

func (d *Dispatcher) searchGenes(ctx context.Context, raw map[string]any) (any, error) {
	var args GeneSearchArgs
	if err := bindArguments(d.validate, raw, &args); err != nil {
		return nil, err
	}
	params, err := geneSearchParams(args)
	if err != nil {
		return nil, internalError(err)
	}
	rows, err := d.upstream.Genes(ctx, params)
	if err != nil {
		return nil, internalError(err)
	}
	return normalizeGenes(args.Query, rows), nil
}

func (d *Dispatcher) exportEdgeList(ctx context.Context, raw map[string]any) (any, error) {
	var args ExportArgs
	if err := bindArguments(d.validate, raw, &args); err != nil {
		return nil, err
	}
	params, err := exportParams(args)
	if err != nil {
		return nil, internalError(err)
	}
	rows, err := d.upstream.Interactions(ctx, params)
	if err != nil {
		return nil, internalError(err)
	}
	return normalizeEdgeList(InteractionType(args.InteractionType), rows), nil
}
