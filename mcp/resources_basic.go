package mcp

// Basic MCP resources: tasks, configs

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	tasksResourceURI   = "kanban://tasks"
	configsResourceURI = "kanban://configs"
)

// RegisterMCPResources registers the read-only resources.
func RegisterMCPResources(server *mcpsdk.Server, tools *Tools) error {
	if err := checkRegistration(server, tools); err != nil {
		return err
	}
	server.AddResource(&mcpsdk.Resource{
		URI:         tasksResourceURI,
		Name:        "tasks",
		Description: "Every task in the board as a JSON array",
		MIMEType:    "application/json",
	}, tools.tasksResourceHandler())

	server.AddResource(&mcpsdk.Resource{
		URI:         configsResourceURI,
		Name:        "configs",
		Description: "Accepted status and priority values",
		MIMEType:    "application/json",
	}, tools.configsResourceHandler())

	return nil
}

// tasksResourceHandler provides access to all tasks in JSON format
func (t *Tools) tasksResourceHandler() mcpsdk.ResourceHandler {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
		conn, err := t.provider.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to open backing store: %w", err)
		}
		res, err := conn.Search(nil, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		text, err := toJSON(res.Payload())
		if err != nil {
			return nil, err
		}

		t.log.Debug("provided tasks resource", zap.Int("tasks", len(res.Rows)))
		return jsonResource(params.URI, text), nil
	}
}

// configsResourceHandler provides the valid enum values
func (t *Tools) configsResourceHandler() mcpsdk.ResourceHandler {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
		text, err := toJSON(ValidConfigs())
		if err != nil {
			return nil, err
		}
		return jsonResource(params.URI, text), nil
	}
}

func jsonResource(uri, text string) *mcpsdk.ReadResourceResult {
	return &mcpsdk.ReadResourceResult{
		Contents: []*mcpsdk.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     text,
			},
		},
	}
}
