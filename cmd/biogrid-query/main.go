package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/biogrid-mcp/internal/config"
	"github.com/roivaz/biogrid-mcp/internal/logging"
	"github.com/roivaz/biogrid-mcp/internal/mcp"
	"github.com/roivaz/biogrid-mcp/internal/mcp/tools"
)

func main() {
	root := &cobra.Command{
		Use:   "biogrid-query",
		Short: "Invoke BioGRID tools once without an MCP client",
	}

	var rawArgs string
	var output string

	callCmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Call a tool with JSON arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := map[string]any{}
			if strings.TrimSpace(rawArgs) != "" {
				if err := json.Unmarshal([]byte(rawArgs), &toolArgs); err != nil {
					return fmt.Errorf("--args must be a JSON object: %w", err)
				}
			}
			dispatcher, err := mcp.NewDispatcher(queryLogger())
			if err != nil {
				return err
			}
			payload, err := dispatcher.Invoke(context.Background(), args[0], toolArgs)
			if err != nil {
				return err
			}
			return outputPayload(cmd.OutOrStdout(), payload, output)
		},
	}
	callCmd.Flags().StringVar(&rawArgs, "args", "{}", "Tool arguments as a JSON object")

	readCmd := &cobra.Command{
		Use:   "read <uri>",
		Short: "Read a resource such as biogrid://export/111,222",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatcher, err := mcp.NewDispatcher(queryLogger())
			if err != nil {
				return err
			}
			resource := &tools.ExportResource{Dispatcher: dispatcher}
			contents, err := resource.Read(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, c := range contents {
				if text, ok := c.(mcpgo.TextResourceContents); ok {
					if err := outputPayload(cmd.OutOrStdout(), []byte(text.Text), output); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.AddCommand(callCmd, readCmd)

	config.Init(root)
	config.BindFlag(root, config.KeyLogLevel, "log-level")

	if err := root.Execute(); err != nil {
		log.Fatalf("biogrid-query: %v", err)
	}
}

func queryLogger() logging.Logger {
	return logging.New(logging.LevelLogger(config.LogLevel())).WithName("biogrid-query")
}

func outputPayload(w io.Writer, payload []byte, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		out, err := yaml.JSONToYAML(payload)
		if err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "json", "":
		var v any
		if err := json.Unmarshal(payload, &v); err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
