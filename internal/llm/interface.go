package llm

import "context"

// Request describes a single chat completion call
type Request struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Client sends a prompt to a hosted model and returns the response text
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
