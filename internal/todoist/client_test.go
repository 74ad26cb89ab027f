package todoist_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HendryAvila/taskbridge/internal/todoist"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		tasks := []todoist.Task{
			{
				ID:          111,
				Content:     "Draft report",
				Description: "Quarterly numbers",
				Priority:    2,
				ProjectID:   2203309130,
			},
			{
				ID:       222,
				Content:  "Pay Electric Bill",
				Due:      &todoist.Due{Date: "2026-09-01"},
				Priority: 4,
				Labels:   []string{"home", "urgent"},
			},
		}
		json.NewEncoder(w).Encode(tasks)
	})

	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		projects := []todoist.Project{
			{ID: 2203309130, Name: "Inbox"},
			{ID: 333, Name: "Billing"},
		}
		json.NewEncoder(w).Encode(projects)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_ListTasks(t *testing.T) {
	ts := newTestServer(t)
	client := todoist.NewClient(ts.URL, "test-token", 5*time.Second)

	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].ID != 111 || tasks[0].Content != "Draft report" {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
	if tasks[0].Due != nil {
		t.Errorf("first task should have no due date, got %+v", tasks[0].Due)
	}
	if tasks[1].Due == nil || tasks[1].Due.Date != "2026-09-01" {
		t.Errorf("second task due = %+v, want 2026-09-01", tasks[1].Due)
	}
	if len(tasks[1].Labels) != 2 {
		t.Errorf("second task labels = %v, want 2 entries", tasks[1].Labels)
	}
}

func TestClient_ListProjects(t *testing.T) {
	ts := newTestServer(t)
	client := todoist.NewClient(ts.URL, "test-token", 5*time.Second)

	projects, err := client.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].ID != 2203309130 || projects[0].Name != "Inbox" {
		t.Errorf("unexpected first project: %+v", projects[0])
	}
}

func TestClient_AuthRejected(t *testing.T) {
	ts := newTestServer(t)
	client := todoist.NewClient(ts.URL, "wrong-token", 5*time.Second)

	_, err := client.ListTasks(context.Background())
	if !errors.Is(err, todoist.ErrAuthRejected) {
		t.Errorf("error = %v, want ErrAuthRejected", err)
	}
}

func TestClient_RateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := todoist.NewClient(ts.URL, "test-token", 5*time.Second)
	_, err := client.ListProjects(context.Background())
	if !errors.Is(err, todoist.ErrRateLimited) {
		t.Errorf("error = %v, want ErrRateLimited", err)
	}
}

func TestClient_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := todoist.NewClient(ts.URL, "test-token", 5*time.Second)
	_, err := client.ListTasks(context.Background())
	if !errors.Is(err, todoist.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestClient_ServerDown(t *testing.T) {
	client := todoist.NewClient("http://localhost:59999", "test-token", time.Second)
	_, err := client.ListTasks(context.Background())
	if !errors.Is(err, todoist.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}
