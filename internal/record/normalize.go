package record

import (
	"github.com/HendryAvila/taskbridge/internal/ident"
	"github.com/HendryAvila/taskbridge/internal/todoist"
)

// NormalizeTask builds the full-detail record for a task. Metadata is
// always present: priority and project_id unconditionally, labels as a
// slice even when empty, and due only when the task carries one.
func NormalizeTask(t todoist.Task) FetchResult {
	meta := &TaskMetadata{
		Priority:  t.Priority,
		Labels:    append([]string{}, t.Labels...),
		ProjectID: t.ProjectID,
	}
	if t.Due != nil && t.Due.Date != "" {
		meta.Due = &DueDate{Date: t.Due.Date, Datetime: t.Due.Datetime}
	}

	return FetchResult{
		ID:       ident.Encode(ident.KindTask, t.ID),
		Title:    t.Content,
		Text:     taskDisplayText(t),
		URL:      TaskURL(t.ID),
		Metadata: meta,
	}
}

// NormalizeProject builds the full-detail record for a project. The
// shape is strictly {id, title, text, url}: no metadata, ever.
func NormalizeProject(p todoist.Project) FetchResult {
	return FetchResult{
		ID:    ident.Encode(ident.KindProject, p.ID),
		Title: p.Name,
		Text:  p.Name,
		URL:   ProjectURL(p.ID),
	}
}
