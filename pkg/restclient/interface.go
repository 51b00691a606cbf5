package restclient

import "context"

// Client is the minimal JSON-over-HTTP surface the LLM providers need
type Client interface {
	Post(ctx context.Context, endpoint string, body any, headers map[string]string) ([]byte, int, error)
}
