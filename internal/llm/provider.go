package llm

import "context"

// Provider is the one AI capability the pipeline consumes: a prompt in, a
// text completion out. The response is treated as adversarial input; callers
// must pass it through DecodeJSON before trusting any structure in it.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
