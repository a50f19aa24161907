package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/store"
	"github.com/josephgoksu/kanban-sheets/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// toJSON renders v as indented JSON, leaving non-ASCII and HTML characters
// unescaped.
func toJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// jsonResult returns payload as JSON text plus the structured copy.
func jsonResult[Out any](payload interface{}, structured Out) (*mcpsdk.CallToolResultFor[Out], error) {
	text, err := toJSON(payload)
	if err != nil {
		return nil, err
	}
	return &mcpsdk.CallToolResultFor[Out]{
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		StructuredContent: structured,
	}, nil
}

// textResult returns a plain status message.
func textResult[Out any](text string) *mcpsdk.CallToolResultFor[Out] {
	return &mcpsdk.CallToolResultFor[Out]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

// errorPayload builds the {"error": msg} result. isError marks failures the
// caller must act on; lookups that simply miss are returned as data.
func errorPayload[Out any](msg string, isError bool) *mcpsdk.CallToolResultFor[Out] {
	text, err := toJSON(types.ErrorResponse{Error: msg})
	if err != nil {
		text = fmt.Sprintf(`{"error": %q}`, msg)
	}
	return &mcpsdk.CallToolResultFor[Out]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: isError,
	}
}

func errorResult[Out any](err error) *mcpsdk.CallToolResultFor[Out] {
	return errorPayload[Out](mcpMessage(err), true)
}

// mcpMessage returns the caller-facing text of err.
func mcpMessage(err error) string {
	var mcpErr *types.MCPError
	if errors.As(err, &mcpErr) {
		return mcpErr.Message
	}
	return err.Error()
}

func notFoundResult[Out any](err error) *mcpsdk.CallToolResultFor[Out] {
	return errorPayload[Out](err.Error(), false)
}

// validationError maps model validation failures to tool error codes.
func validationError(err error) *types.MCPError {
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		return types.NewMCPError(types.CodeValidation, err.Error(), nil)
	}
	details := map[string]interface{}{"field": verr.Field}
	if len(verr.Allowed) == 0 {
		return types.NewMCPError(types.CodeMissingField, verr.Error(), details)
	}
	details["value"] = verr.Value
	details["valid_values"] = verr.Allowed
	switch verr.Field {
	case models.ColStatus.Field():
		return types.NewMCPError(types.CodeInvalidStatus, verr.Error(), details)
	case models.ColPriority.Field():
		return types.NewMCPError(types.CodeInvalidPriority, verr.Error(), details)
	}
	return types.NewMCPError(types.CodeValidation, verr.Error(), details)
}

// storageError wraps connector failures for the caller.
func storageError(err error, op string) *types.MCPError {
	details := map[string]interface{}{"operation": op}
	var serr *store.StorageError
	if errors.As(err, &serr) {
		details["target"] = serr.Target
	}
	return types.NewMCPError(types.CodeStorage, fmt.Sprintf("failed to %s: %v", op, err), details)
}
