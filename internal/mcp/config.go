package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/biogrid-mcp/internal/biogrid"
	"github.com/roivaz/biogrid-mcp/internal/config"
	"github.com/roivaz/biogrid-mcp/internal/logging"
	"github.com/roivaz/biogrid-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters   map[string]ToolAdapter
	ExportResource ResourceAdapter
	Options        []server.StreamableHTTPOption
}

// NewConfig wires every tool and the export resource to one dispatcher.
func NewConfig(dispatcher *tools.Dispatcher, endpointPath string) Config {
	adapters := make(map[string]ToolAdapter)
	for _, name := range dispatcher.Names() {
		adapters[name] = &tools.ToolHandler{Name: name, Dispatcher: dispatcher}
	}
	if endpointPath == "" {
		endpointPath = "/mcp/jsonrpc"
	}
	return Config{
		ToolAdapters:   adapters,
		ExportResource: &tools.ExportResource{Dispatcher: dispatcher},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(endpointPath),
			server.WithStateLess(true),
		},
	}
}

// NewDispatcher validates startup configuration and builds the dispatcher
// over a live BioGRID client. The error is returned to the caller rather than
// terminating the process.
func NewDispatcher(log logging.Logger) (*tools.Dispatcher, error) {
	biogridCfg, err := config.LoadBioGRID()
	if err != nil {
		return nil, fmt.Errorf("load biogrid config: %w", err)
	}
	client := biogrid.NewClient(biogridCfg, log)
	return tools.NewDispatcher(client, log), nil
}

// DefaultConfig builds the production server configuration from viper.
func DefaultConfig(log logging.Logger) (Config, error) {
	dispatcher, err := NewDispatcher(log)
	if err != nil {
		return Config{}, err
	}
	return NewConfig(dispatcher, config.EndpointPath()), nil
}
