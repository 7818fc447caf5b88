package notify

import "context"

type Notificator interface {
	// Notify reports a failed operation to the operator.
	Notify(ctx context.Context, op string, err error, details string) error
}
