// Package resources implements MCP resource handlers for the gateway.
//
// Resources provide read-only data the host can consume for context.
// They use URI-based addressing (taskbridge://...) following MCP
// conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/taskbridge/internal/config"
)

// Handler manages gateway resource endpoints.
type Handler struct {
	cfg     *config.Config
	version string
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(cfg *config.Config, version string) *Handler {
	return &Handler{cfg: cfg, version: version}
}

// StatusResource returns the MCP resource definition for connector status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"taskbridge://status",
		"Connector Status",
		mcp.WithResourceDescription("Gateway version, upstream endpoint, and search limits"),
		mcp.WithMIMEType("application/json"),
	)
}

// status is the shape served by the status resource. The upstream token
// is deliberately not part of it.
type status struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	UpstreamURL string   `json:"upstream_url"`
	MaxResults  int      `json:"max_results"`
	Tools       []string `json:"tools"`
}

// HandleStatus returns the current connector status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(status{
		Name:        "taskbridge",
		Version:     h.version,
		UpstreamURL: h.cfg.Todoist.BaseURL,
		MaxResults:  h.cfg.Search.MaxResults,
		Tools:       []string{"search", "fetch"},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
