package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with a short label describing why the
// request is being made ("explain_topic", "ask_question"). The label is
// recorded alongside the request log entry.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label from the context, or "unknown"
// if unset.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
