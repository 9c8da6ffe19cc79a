package payment

import (
	"context"
	"errors"
)

// ErrNotPending is returned by UpdateFromPending when the stored payment was
// already settled by another reviewer.
var ErrNotPending = errors.New("payment is not pending")

// ListFilter narrows a payment listing. Empty Status (or "all") means no
// status restriction.
type ListFilter struct {
	Limit  int
	Skip   int
	Status string
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error

	// UpdateFromPending persists a pending→settled transition. The write is
	// guarded on the stored status so two racing reviewers cannot both
	// settle the same payment; the loser gets ErrNotPending.
	UpdateFromPending(ctx context.Context, payment *Payment) error

	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	List(ctx context.Context, filter ListFilter) ([]*Payment, int64, error)
	ListByTelegramID(ctx context.Context, telegramID int64) ([]*Payment, error)

	// DeleteByTelegramID removes all payments owned by a user. Called when
	// the user itself is deleted so no orphaned submissions remain.
	DeleteByTelegramID(ctx context.Context, telegramID int64) error
}
