package payment

import (
	"context"
	"errors"
	"time"

	"loantrack-backend/internal/domain/loan"
	"loantrack-backend/internal/domain/payment"
	"loantrack-backend/pkg/id"

	"gorm.io/gorm"
)

var (
	ErrMissingFields = errors.New("required fields missing")
	ErrInvalidMethod = errors.New("unknown payment method")
)

type Usecase struct {
	payments payment.Repository
	loans    loan.Repository
}

func NewUsecase(payments payment.Repository, loans loan.Repository) *Usecase {
	return &Usecase{payments: payments, loans: loans}
}

type RecordPaymentInput struct {
	LoanID  string
	Amount  float64
	Method  string
	Remarks string
	DueDate *time.Time
}

// Record writes one payment event. There is no gateway integration, so the
// payment is Completed the moment it is recorded, tagged with a generated
// transaction id.
func (u *Usecase) Record(ctx context.Context, userID string, in RecordPaymentInput) (*payment.Payment, error) {
	if in.LoanID == "" || in.Amount <= 0 {
		return nil, ErrMissingFields
	}
	method := payment.MethodBankTransfer
	if in.Method != "" {
		method = payment.Method(in.Method)
		if !payment.ValidMethod(method) {
			return nil, ErrInvalidMethod
		}
	}

	if _, err := u.loans.GetByLoanID(ctx, in.LoanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}

	p := &payment.Payment{
		PaymentID:     id.NewID32(),
		LoanID:        in.LoanID,
		UserID:        userID,
		Amount:        in.Amount,
		PaymentDate:   time.Now().UTC(),
		DueDate:       in.DueDate,
		Status:        payment.StatusCompleted,
		TransactionID: id.NewTransactionID(),
		Method:        method,
		Remarks:       in.Remarks,
	}
	if err := u.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoanSummary is the slice of loan detail attached to each history entry.
type LoanSummary struct {
	LoanID   string        `json:"loan_id"`
	Category loan.Category `json:"loan_type"`
	Amount   float64       `json:"loan_amount"`
	Status   loan.Status   `json:"status"`
}

type PaymentWithLoan struct {
	payment.Payment
	Loan *LoanSummary `json:"loan,omitempty"`
}

// ListByOwner returns the user's payment history, newest payment first, each
// entry joined with a summary of its loan. A payment whose loan has since
// been deleted is returned without the summary rather than dropped.
func (u *Usecase) ListByOwner(ctx context.Context, userID string) ([]PaymentWithLoan, error) {
	ps, err := u.payments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := map[string]*LoanSummary{}
	out := make([]PaymentWithLoan, 0, len(ps))
	for _, p := range ps {
		s, seen := summaries[p.LoanID]
		if !seen {
			if l, err := u.loans.GetByLoanID(ctx, p.LoanID); err == nil {
				s = &LoanSummary{LoanID: l.LoanID, Category: l.Category, Amount: l.Amount, Status: l.Status}
			}
			summaries[p.LoanID] = s
		}
		out = append(out, PaymentWithLoan{Payment: p, Loan: s})
	}
	return out, nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]payment.Payment, error) {
	return u.payments.ListByLoanID(ctx, loanID)
}
