// Package server wires the MCP components and creates the server instance.
//
// This is the composition root: it builds the upstream client from
// configuration and injects it into the tools that depend on it.
// No business logic lives here — only wiring.
package server

import (
	"go.uber.org/zap"

	"github.com/HendryAvila/taskbridge/internal/config"
	"github.com/HendryAvila/taskbridge/internal/prompts"
	"github.com/HendryAvila/taskbridge/internal/resources"
	"github.com/HendryAvila/taskbridge/internal/todoist"
	"github.com/HendryAvila/taskbridge/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with the search and fetch
// tools, the research prompt, and the status resource registered. This
// is the single place where all dependencies are resolved.
//
// The server holds no per-request state: every tool call fetches fresh
// data from upstream, so concurrent requests never share anything
// mutable.
func New(cfg *config.Config, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"taskbridge",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	upstream := todoist.NewClient(cfg.Todoist.BaseURL, cfg.Todoist.Token, cfg.Todoist.Timeout)

	searchTool := tools.NewSearchTool(upstream, logger, cfg.Search.MaxResults)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	fetchTool := tools.NewFetchTool(upstream, logger)
	s.AddTool(fetchTool.Definition(), fetchTool.Handle)

	researchPrompt := prompts.NewResearchPrompt()
	s.AddPrompt(researchPrompt.Definition(), researchPrompt.Handle)

	statusHandler := resources.NewHandler(cfg, Version)
	s.AddResource(statusHandler.StatusResource(), statusHandler.HandleStatus)

	return s
}

// serverInstructions tells the host how to use the connector.
func serverInstructions() string {
	return `You have access to taskbridge, a read-only connector for one Todoist account.

## Tools

### search
- Input: {"query": string}
- Matches tasks (title + description) and projects (name) by case-insensitive
  substring. An empty query lists everything.
- Output: a JSON array of {id, title, text, url}. Tasks come before projects;
  within each kind, upstream order is preserved. Results are capped, so narrow
  the query if you suspect more matches exist.

### fetch
- Input: {"id": string} — an identifier returned from search, in the form
  task:<numeric-id> or project:<numeric-id>.
- Output: one JSON record {id, title, text, url, metadata?}. Task records carry
  metadata with due (when set), priority (1-4, 4 highest), labels, and
  project_id. Project records have no metadata.

## Workflow
1. search for a topic, or with an empty query to browse everything
2. fetch the ids of the most relevant results for full detail
3. Cite the record URLs when reporting back

## Limits
- The connector never modifies the account: no creating, completing, or
  deleting tasks.
- Nothing is cached — every call reflects the account at that moment. An id
  from an earlier search can come back not_found if the task was deleted.
- Upstream rate limiting surfaces as upstream_rate_limited; wait and retry.`
}
