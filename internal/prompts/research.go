// Package prompts implements MCP prompt handlers for the gateway.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResearchPrompt handles the task-research MCP prompt.
// It walks the host through the search → fetch flow.
type ResearchPrompt struct{}

// NewResearchPrompt creates a ResearchPrompt.
func NewResearchPrompt() *ResearchPrompt {
	return &ResearchPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ResearchPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("task-research",
		mcp.WithPromptDescription(
			"Research a topic across Todoist tasks and projects: "+
				"search first, then fetch full records for the best matches.",
		),
		mcp.WithArgument("topic",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("What to look for in the account"),
		),
	)
}

// Handle processes the task-research prompt request.
func (p *ResearchPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := req.Params.Arguments["topic"]

	return &mcp.GetPromptResult{
		Description: "Todoist research flow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please research %q in my Todoist account.\n\n"+
						"1. Call `search` with the topic (an empty query lists everything)\n"+
						"2. Pick the most relevant results\n"+
						"3. Call `fetch` with each chosen result's id for the full record\n"+
						"4. Summarize what you found, citing the record URLs",
					topic,
				)),
			},
		},
	}, nil
}
