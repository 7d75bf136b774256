package ports

import "context"

// Notifier sends a short text message to a user's phone. Delivery is best
// effort: callers log failures and never let them block a lifecycle
// transition.
type Notifier interface {
	Send(ctx context.Context, phone string, message string) error
}
