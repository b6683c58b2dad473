// Package inference abstracts the external text-generation service.
package inference

import "context"

// Client generates free-form text from a single prompt. Implementations
// make exactly one attempt per call; retry policy belongs to the caller's
// user, not this layer.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
