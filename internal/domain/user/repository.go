package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, u *User) error
	List(ctx context.Context, limit int) ([]User, error)

	// Counter side effects. Increments only; see the loan usecase for the
	// non-atomicity caveats around these.
	IncrementLoansApplied(ctx context.Context, userID string) error
	IncrementLoansApproved(ctx context.Context, userID string) error
}
