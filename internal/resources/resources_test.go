package resources

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/taskbridge/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Todoist.Token = "secret-token"
	cfg.Todoist.BaseURL = "https://api.todoist.com/rest/v2"
	cfg.Search.MaxResults = 10
	return cfg
}

func TestStatusResource_Definition(t *testing.T) {
	h := NewHandler(testConfig(), "1.2.3")
	res := h.StatusResource()

	if res.URI != "taskbridge://status" {
		t.Errorf("URI = %q", res.URI)
	}
	if res.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q", res.MIMEType)
	}
}

func TestHandleStatus(t *testing.T) {
	h := NewHandler(testConfig(), "1.2.3")

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "taskbridge://status"

	contents, err := h.HandleStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleStatus error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(text.Text), &got); err != nil {
		t.Fatalf("status is not JSON: %v", err)
	}
	if got["version"] != "1.2.3" {
		t.Errorf("version = %v", got["version"])
	}
	if got["upstream_url"] != "https://api.todoist.com/rest/v2" {
		t.Errorf("upstream_url = %v", got["upstream_url"])
	}
	if strings.Contains(text.Text, "secret-token") {
		t.Error("status leaks the upstream token")
	}
}
