package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/taskbridge/internal/ident"
	"github.com/HendryAvila/taskbridge/internal/record"
	"github.com/HendryAvila/taskbridge/internal/todoist"
)

// FetchTool handles the fetch MCP tool.
type FetchTool struct {
	upstream Upstream
	logger   *zap.Logger
}

// NewFetchTool creates a FetchTool.
func NewFetchTool(upstream Upstream, logger *zap.Logger) *FetchTool {
	return &FetchTool{upstream: upstream, logger: logger}
}

// Definition returns the MCP tool definition for fetch.
func (t *FetchTool) Definition() mcp.Tool {
	return mcp.NewTool("fetch",
		mcp.WithDescription(
			"Fetch full detail for one Todoist task or project by the "+
				"identifier returned from search. Task records include metadata "+
				"(due, priority, labels, project_id); project records do not.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Identifier in the form task:<numeric-id> or project:<numeric-id>"),
		),
	)
}

// Handle processes the fetch tool call.
func (t *FetchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := stringArg(req.GetArguments(), "id")
	if !ok {
		return errResult(codeBadRequest, errors.New("'id' must be a non-null string")), nil
	}

	kind, numericID, err := ident.Decode(id)
	if err != nil {
		return errResult(codeBadRequest, err), nil
	}

	// The entity set is fetched fresh on every call, so an id that was
	// valid at search time may have vanished by fetch time.
	tasks, projects, err := listBoth(ctx, t.upstream)
	if err != nil {
		t.logger.Warn("fetch: upstream retrieval failed", zap.String("id", id), zap.Error(err))
		return upstreamResult(err), nil
	}

	var rec record.FetchResult
	switch kind {
	case ident.KindTask:
		task, found := findTask(tasks, numericID)
		if !found {
			return errResult(codeNotFound, fmt.Errorf("no task with id %d", numericID)), nil
		}
		rec = record.NormalizeTask(task)
	case ident.KindProject:
		project, found := findProject(projects, numericID)
		if !found {
			return errResult(codeNotFound, fmt.Errorf("no project with id %d", numericID)), nil
		}
		rec = record.NormalizeProject(project)
	}

	t.logger.Info("fetch", zap.String("id", id))

	payload, err := json.Marshal(rec)
	if err != nil {
		return errResult(codeInternal, err), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func findTask(tasks []todoist.Task, id int64) (todoist.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return todoist.Task{}, false
}

func findProject(projects []todoist.Project, id int64) (todoist.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return todoist.Project{}, false
}
