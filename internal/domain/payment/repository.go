package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByUserID returns the user's payments ordered by payment date,
	// most recent first.
	ListByUserID(ctx context.Context, userID string) ([]Payment, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
}
