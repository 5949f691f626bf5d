package llm

import "context"

// Completer is the completion service contract every synthesis stage
// depends on. Calls are stateless: all grounding context must travel
// inside system and user. maxOutput limits generated tokens; zero
// means provider default.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxOutput int) (string, error)
}

// KeyRotator is implemented by providers that hold several API keys
// and can switch to the next one after a rate limit.
type KeyRotator interface {
	RotateKey()
}
