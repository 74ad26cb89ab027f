// Package tools implements the gateway's two MCP tools: search and fetch.
//
// Each tool follows the same pattern:
// - A struct with dependencies (upstream client, logger) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() validates the request, retrieves fresh upstream data, and
//   emits the result as a single JSON payload
//
// Tools hold no state between requests. Every call fetches the current
// entity set from upstream, so results may race against upstream edits;
// that is acceptable — a response reflects the most recent successful
// fetch.
package tools

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/HendryAvila/taskbridge/internal/todoist"
)

// Upstream is the slice of the Todoist client the tools depend on.
// Production wires *todoist.Client; tests substitute a fake.
type Upstream interface {
	ListTasks(ctx context.Context) ([]todoist.Task, error)
	ListProjects(ctx context.Context) ([]todoist.Project, error)
}

// listBoth retrieves tasks and projects concurrently. The two reads are
// independent, so issuing them in parallel halves the upstream latency
// contribution. The first failure cancels the sibling call.
func listBoth(ctx context.Context, up Upstream) ([]todoist.Task, []todoist.Project, error) {
	var (
		tasks    []todoist.Task
		projects []todoist.Project
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = up.ListTasks(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = up.ListProjects(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return tasks, projects, nil
}

// stringArg extracts a required string argument from a tool request.
// It distinguishes "missing or null" from "wrong type" so both surface
// as bad requests with a precise message.
func stringArg(args map[string]any, key string) (string, bool) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}
