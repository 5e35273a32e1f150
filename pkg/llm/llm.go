package llm

import "context"

// ChatModel is a single-turn chat completion: one system instruction, one user
// message, one generated reply. Providers live in subpackages.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
