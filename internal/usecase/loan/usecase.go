package loan

import (
	"context"
	"errors"
	"log"
	"time"

	"loantrack-backend/internal/domain/emi"
	"loantrack-backend/internal/domain/loan"
	"loantrack-backend/internal/domain/user"
	"loantrack-backend/pkg/id"

	"gorm.io/gorm"
)

var (
	ErrMissingFields   = errors.New("required fields missing")
	ErrInvalidCategory = errors.New("unknown loan category")
	ErrInvalidStatus   = errors.New("unknown loan status")
)

type Usecase struct {
	loans loan.Repository
	users user.Repository
}

func NewUsecase(loans loan.Repository, users user.Repository) *Usecase {
	return &Usecase{loans: loans, users: users}
}

// Create computes the amortization schedule for the application, persists
// the loan in Pending state, and bumps the applicant's applied-loan counter.
// The counter increment is a second, independent write: if it fails the loan
// still stands and the failure is only logged.
func (u *Usecase) Create(ctx context.Context, userID string, in CreateLoanInput) (*loan.Loan, error) {
	if userID == "" || in.Amount == 0 || in.TermYears == 0 || in.Category == "" {
		return nil, ErrMissingFields
	}
	if !loan.ValidCategory(loan.Category(in.Category)) {
		return nil, ErrInvalidCategory
	}

	rate := emi.DefaultAnnualRate
	if in.InterestRate != nil {
		rate = *in.InterestRate
	}
	sched, err := emi.Compute(in.Amount, rate, in.TermYears)
	if err != nil {
		return nil, err
	}

	l := &loan.Loan{
		LoanID:        id.NewID32(),
		UserID:        userID,
		Amount:        in.Amount,
		TermYears:     in.TermYears,
		Category:      loan.Category(in.Category),
		InterestRate:  rate,
		MonthlyEMI:    sched.MonthlyEMI,
		TotalInterest: sched.TotalInterest,
		TotalAmount:   sched.TotalAmount,
		Status:        loan.StatusPending,
		Purpose:       in.Purpose,
	}
	for _, d := range in.Documents {
		l.Documents = append(l.Documents, loan.Document{Name: d.Name, URL: d.URL})
	}

	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	if err := u.users.IncrementLoansApplied(ctx, userID); err != nil {
		log.Printf("loan %s: applied-counter increment failed: %v", l.LoanID, err)
	}
	return l, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*loan.Loan, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loan.ErrNotFound
	}
	return l, err
}

// ListByOwner returns the user's loans, newest first.
func (u *Usecase) ListByOwner(ctx context.Context, userID string) ([]loan.Loan, error) {
	return u.loans.ListByUserID(ctx, userID)
}

// UpdateStatus sets the loan's status to any of the five states; there is no
// transition table, so an administrator may move a loan from any state to any
// other. A transition to Approved also bumps the owner's approved-loan
// counter. That increment is not idempotent: approving an already-Approved
// loan counts again.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, status loan.Status, rejectionReason string) (*loan.Loan, error) {
	if !loan.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loan.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l.Status = status
	if rejectionReason != "" {
		l.RejectionReason = rejectionReason
	}
	switch status {
	case loan.StatusApproved:
		l.ApprovalDate = &now
	case loan.StatusDisbursed:
		l.DisbursementDate = &now
	}

	if err := u.loans.Save(ctx, l); err != nil {
		return nil, err
	}

	if status == loan.StatusApproved {
		if err := u.users.IncrementLoansApproved(ctx, l.UserID); err != nil {
			log.Printf("loan %s: approved-counter increment failed: %v", loanID, err)
		}
	}
	return l, nil
}

func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	err := u.loans.Delete(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loan.ErrNotFound
	}
	return err
}
