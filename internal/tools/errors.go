package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/taskbridge/internal/todoist"
)

// Error codes surfaced to the client. Every failure is delivered as a
// single error event carrying one of these prefixes — never a partial
// payload on the success channel.
const (
	codeBadRequest          = "bad_request"
	codeNotFound            = "not_found"
	codeUpstreamAuth        = "upstream_auth_error"
	codeUpstreamRateLimited = "upstream_rate_limited"
	codeUpstreamUnavailable = "upstream_unavailable"
	codeInternal            = "internal_error"
)

// errResult formats a failure as a single structured error event.
func errResult(code string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", code, err))
}

// upstreamResult maps an upstream client failure onto a distinguishable
// protocol error code. Anything unclassified is an internal error.
func upstreamResult(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, todoist.ErrAuthRejected):
		return errResult(codeUpstreamAuth, err)
	case errors.Is(err, todoist.ErrRateLimited):
		return errResult(codeUpstreamRateLimited, err)
	case errors.Is(err, todoist.ErrUnavailable):
		return errResult(codeUpstreamUnavailable, err)
	default:
		return errResult(codeInternal, err)
	}
}
