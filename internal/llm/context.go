package llm

import "context"

type purposeKey struct{}

// Purposes tagged on outgoing requests.
const (
	PurposeCoach   = "coach"
	PurposeUnknown = "unknown"
)

// WithPurpose labels requests made with ctx so logged events can be grouped.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
