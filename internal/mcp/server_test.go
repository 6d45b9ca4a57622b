package mcp

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/roivaz/biogrid-mcp/internal/biogrid"
	"github.com/roivaz/biogrid-mcp/internal/logging"
	"github.com/roivaz/biogrid-mcp/internal/mcp/tools"
)

type cannedUpstream struct {
	calls int
}

func (c *cannedUpstream) Interactions(context.Context, url.Values) ([]biogrid.Interaction, error) {
	c.calls++
	return []biogrid.Interaction{
		{ID: "1", SymbolA: "TP53", SymbolB: "MDM2", ExperimentalSystem: "Two-hybrid", SystemType: "physical", PubMedID: "100"},
	}, nil
}

func (c *cannedUpstream) Genes(context.Context, url.Values) ([]biogrid.Gene, error) {
	c.calls++
	return nil, nil
}

func newTestServer(t *testing.T) (*Server, *cannedUpstream) {
	t.Helper()
	up := &cannedUpstream{}
	d := tools.NewDispatcher(up, logging.Discard())
	return New(NewConfig(d, "")), up
}

func handle(t *testing.T, srv *Server, request string) gjson.Result {
	t.Helper()
	resp := srv.MCP.HandleMessage(context.Background(), json.RawMessage(request))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	return gjson.ParseBytes(raw)
}

func TestToolDefinitions_Schemas(t *testing.T) {
	defs := ToolDefinitions()
	names := make([]string, 0, len(defs))
	for name, tool := range defs {
		assert.Equal(t, name, tool.Name)
		names = append(names, name)
	}
	sort.Strings(names)
	d := tools.NewDispatcher(&cannedUpstream{}, logging.Discard())
	assert.Equal(t, d.Names(), names, "every dispatcher tool needs a schema")

	required := map[string][]string{
		tools.ToolGeneInteractions:     {"gene"},
		tools.ToolPhysicalInteractions: {"gene"},
		tools.ToolGeneticInteractions:  {"gene"},
		tools.ToolSearchGenes:          {"query"},
		tools.ToolExportEdgeList:       {"biogrid_ids"},
	}
	for name, want := range required {
		assert.Equal(t, want, defs[name].InputSchema.Required, name)
	}
	assert.Contains(t, defs[tools.ToolExportEdgeList].InputSchema.Properties, "interaction_type")
	assert.Contains(t, defs[tools.ToolSearchGenes].InputSchema.Properties, "max_results")
}

func TestServer_ListsToolsAndTemplate(t *testing.T) {
	srv, _ := newTestServer(t)

	res := handle(t, srv, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	var listed []string
	for _, tool := range res.Get("result.tools.#.name").Array() {
		listed = append(listed, tool.String())
	}
	sort.Strings(listed)
	assert.Equal(t, []string{
		tools.ToolExportEdgeList,
		tools.ToolGeneInteractions,
		tools.ToolGeneticInteractions,
		tools.ToolPhysicalInteractions,
		tools.ToolSearchGenes,
	}, listed)

	res = handle(t, srv, `{"jsonrpc":"2.0","id":2,"method":"resources/templates/list"}`)
	assert.Equal(t, tools.ExportURITemplate, res.Get("result.resourceTemplates.0.uriTemplate").String())
	assert.Equal(t, tools.ExportMIMEType, res.Get("result.resourceTemplates.0.mimeType").String())
}

func TestServer_CallTool(t *testing.T) {
	srv, up := newTestServer(t)

	res := handle(t, srv, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"export_edge_list","arguments":{"biogrid_ids":["111","222"]}}}`)
	require.False(t, res.Get("error").Exists(), res.Raw)
	assert.Equal(t, "text", res.Get("result.content.0.type").String())
	assert.JSONEq(t, `{"edge_list":[["TP53","MDM2"]],"count":1}`, res.Get("result.content.0.text").String())
	assert.Equal(t, 1, up.calls)
}

func TestServer_InvalidArgumentsReturnErrorResult(t *testing.T) {
	srv, up := newTestServer(t)

	res := handle(t, srv, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_gene_interactions","arguments":{}}}`)
	assert.True(t, res.Get("result.isError").Bool(), res.Raw)
	assert.Contains(t, res.Get("result.content.0.text").String(), "gene is required")
	assert.Zero(t, up.calls)
}

func TestServer_MalformedResourceURIIsNotInternal(t *testing.T) {
	srv, up := newTestServer(t)

	res := handle(t, srv, `{"jsonrpc":"2.0","id":5,"method":"resources/read","params":{"uri":"biogrid://export/,,"}}`)
	require.True(t, res.Get("error").Exists(), res.Raw)
	assert.NotEqual(t, int64(mcpgo.INTERNAL_ERROR), res.Get("error.code").Int())
	assert.Contains(t, res.Get("error.message").String(), "names no identifiers")
	assert.Zero(t, up.calls)
}
