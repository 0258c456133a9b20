// Package llm is the boundary adapter to the hosted text-generation capability.
// Callers hand it an ordered list of role-tagged messages and fixed decoding
// parameters; it returns generated text or a typed failure. It never retries.
package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TokenUsage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// Request carries the assembled conversation plus decoding parameters. The
// parameters are fixed per deployment; request construction is the only place
// they are set.
type Request struct {
	Model       string
	System      []string
	Messages    []Message
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

type Response struct {
	Text       string
	Usage      TokenUsage
	StopReason string
}

// Typed gateway failures. The pipeline pattern-matches with errors.Is and picks
// the fallback envelope; it never inspects provider error text.
var (
	// ErrUnavailable: the upstream call failed, timed out, or returned a
	// non-success status.
	ErrUnavailable = errors.New("llm: upstream unavailable")
	// ErrEmptyOutput: the call succeeded but produced blank text.
	ErrEmptyOutput = errors.New("llm: upstream returned empty output")
)

// Client generates text from an assembled conversation. Implementations make
// exactly one upstream attempt per call.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// ClientFunc adapts a plain function to the Client interface.
type ClientFunc func(ctx context.Context, req Request) (Response, error)

func (f ClientFunc) Complete(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}
