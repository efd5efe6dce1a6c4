package ports

import "context"

// Contract for delivering an operator-facing text message, best effort.
// Implementations report a *domain.DeliveryError on provider rejection.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
