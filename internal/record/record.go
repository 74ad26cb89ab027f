// Package record reshapes upstream entities into the two response
// contracts the gateway serves: search summaries and full fetch records.
//
// Everything here is pure: the matcher and normalizers take entities
// already fetched from upstream and never perform I/O, so they are
// trivially safe under concurrent requests.
package record

// SearchResult is one row of a search response.
type SearchResult struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// FetchResult is the full-detail record for a single entity.
//
// Metadata is populated for tasks only. Project records never carry it:
// the pointer stays nil and omitempty drops the key, making the absence
// a property of the shape rather than an incidental omission.
type FetchResult struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Text     string        `json:"text"`
	URL      string        `json:"url"`
	Metadata *TaskMetadata `json:"metadata,omitempty"`
}

// TaskMetadata is the structured detail attached to task records.
// Labels is always a slice — empty, never absent — while Due appears
// only when the task has a due date.
type TaskMetadata struct {
	Due       *DueDate `json:"due,omitempty"`
	Priority  int      `json:"priority"`
	Labels    []string `json:"labels"`
	ProjectID int64    `json:"project_id"`
}

// DueDate mirrors the upstream due object.
type DueDate struct {
	Date     string `json:"date"`
	Datetime string `json:"datetime,omitempty"`
}
