// Package llm defines the text-generation client used by the chat relay.
package llm

import "context"

// Client sends a system instruction and a single user turn to a hosted
// model and returns the generated text. Implementations carry their model
// identifier and sampling temperature.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
