package ports

import "context"

// ConciergeService relays a guest message to the text-generation backend and
// returns the reply verbatim. Every failure degrades to a fixed in-character
// apology; the relay never returns an error to the caller.
type ConciergeService interface {
	Reply(ctx context.Context, message string) string
}
