package service

import "context"

// SummaryEnhancer is the optional external text-generation provider.
// Callers must treat every failure as recoverable: the deterministic
// summary composer is always the fallback, and no enhancer error may
// reach an API client.
type SummaryEnhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}
