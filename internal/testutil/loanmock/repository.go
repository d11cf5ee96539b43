package loanmock

import (
	"context"

	domain "loantrack-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only the methods a test sets are exercised; the rest no-op or cancel.
type Repo struct {
	CreateFn       func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn  func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.Loan, error)
	SaveFn         func(ctx context.Context, l *domain.Loan) error
	DeleteFn       func(ctx context.Context, loanID string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Loan, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, loanID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanID)
	}
	return nil
}
