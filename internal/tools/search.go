package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/taskbridge/internal/record"
)

// SearchTool handles the search MCP tool.
type SearchTool struct {
	upstream   Upstream
	logger     *zap.Logger
	maxResults int
}

// NewSearchTool creates a SearchTool. maxResults <= 0 selects the
// default cap.
func NewSearchTool(upstream Upstream, logger *zap.Logger, maxResults int) *SearchTool {
	return &SearchTool{upstream: upstream, logger: logger, maxResults: maxResults}
}

// Definition returns the MCP tool definition for search.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription(
			"Search Todoist tasks and projects by free text. Matching is a "+
				"case-insensitive substring over task titles/descriptions and "+
				"project names; tasks come before projects. Returns a JSON array "+
				"of {id, title, text, url} summaries.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search string. An empty string lists everything."),
		),
	)
}

// Handle processes the search tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, ok := stringArg(req.GetArguments(), "query")
	if !ok {
		return errResult(codeBadRequest, errors.New("'query' must be a non-null string")), nil
	}

	tasks, projects, err := listBoth(ctx, t.upstream)
	if err != nil {
		t.logger.Warn("search: upstream retrieval failed", zap.Error(err))
		return upstreamResult(err), nil
	}

	results := record.Search(query, tasks, projects, t.maxResults)
	t.logger.Info("search",
		zap.String("query", query),
		zap.Int("tasks", len(tasks)),
		zap.Int("projects", len(projects)),
		zap.Int("results", len(results)),
	)

	payload, err := json.Marshal(results)
	if err != nil {
		return errResult(codeInternal, err), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
