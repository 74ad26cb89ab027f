package record

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/taskbridge/internal/ident"
	"github.com/HendryAvila/taskbridge/internal/todoist"
)

// Canonical deep links into the Todoist web app, one template per kind.
const (
	taskURLTemplate    = "https://todoist.com/showTask?id=%d"
	projectURLTemplate = "https://todoist.com/showProject?id=%d"
)

// DefaultMaxResults caps a search response when no limit is configured.
const DefaultMaxResults = 10

// snippetLimit bounds the display text of a search row.
const snippetLimit = 200

// Search matches a free-text query against the given entity sets using
// case-insensitive substring containment. Tasks match on title or
// description; projects match on name. Tasks come first, and within
// each kind upstream order is preserved — no relevance scoring.
//
// An empty or whitespace-only query matches everything ("list all"
// mode). max <= 0 falls back to DefaultMaxResults.
func Search(query string, tasks []todoist.Task, projects []todoist.Project, max int) []SearchResult {
	if max <= 0 {
		max = DefaultMaxResults
	}
	q := strings.ToLower(strings.TrimSpace(query))

	results := make([]SearchResult, 0, max)

	for _, t := range tasks {
		if len(results) >= max {
			return results
		}
		if !contains(t.Content, q) && !contains(t.Description, q) {
			continue
		}
		results = append(results, SearchResult{
			ID:    ident.Encode(ident.KindTask, t.ID),
			Title: t.Content,
			Text:  truncate(taskDisplayText(t), snippetLimit),
			URL:   TaskURL(t.ID),
		})
	}

	for _, p := range projects {
		if len(results) >= max {
			break
		}
		if !contains(p.Name, q) {
			continue
		}
		results = append(results, SearchResult{
			ID:    ident.Encode(ident.KindProject, p.ID),
			Title: p.Name,
			Text:  truncate(p.Name, snippetLimit),
			URL:   ProjectURL(p.ID),
		})
	}

	return results
}

// contains reports whether the already-lowered query occurs in field.
// The empty query matches every field.
func contains(field, loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), loweredQuery)
}

// taskDisplayText renders a task title with its due/priority annotation.
// Tasks without a due date render as the bare title — no dangling
// punctuation.
func taskDisplayText(t todoist.Task) string {
	if t.Due == nil || t.Due.Date == "" {
		return t.Content
	}
	if t.Priority > 0 {
		return fmt.Sprintf("%s  (due: %s, priority: %d)", t.Content, t.Due.Date, t.Priority)
	}
	return fmt.Sprintf("%s  (due: %s)", t.Content, t.Due.Date)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TaskURL returns the canonical web link for a task id.
func TaskURL(id int64) string {
	return fmt.Sprintf(taskURLTemplate, id)
}

// ProjectURL returns the canonical web link for a project id.
func ProjectURL(id int64) string {
	return fmt.Sprintf(projectURLTemplate, id)
}
