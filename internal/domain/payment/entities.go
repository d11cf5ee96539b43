package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("payment not found")

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusFailed    Status = "Failed"
	StatusOverdue   Status = "Overdue"
)

type Method string

const (
	MethodBankTransfer Method = "Bank Transfer"
	MethodCard         Method = "Card"
	MethodUPI          Method = "UPI"
	MethodCheque       Method = "Cheque"
)

func ValidMethod(m Method) bool {
	switch m {
	case MethodBankTransfer, MethodCard, MethodUPI, MethodCheque:
		return true
	}
	return false
}

// Payment is one payment event against a loan. Records are written once at
// submission and never mutated or deleted afterwards.
type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    string `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	UserID    string `gorm:"size:32;index:idx_payments_user" json:"user_id"`

	Amount      float64    `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentDate time.Time  `json:"payment_date"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	Status        Status `gorm:"type:enum('Pending','Completed','Failed','Overdue');default:'Pending'" json:"status"`
	TransactionID string `gorm:"size:64;index" json:"transaction_id"`
	Method        Method `gorm:"column:payment_method;type:enum('Bank Transfer','Card','UPI','Cheque');default:'Bank Transfer'" json:"payment_method"`
	Remarks       string `gorm:"type:text" json:"remarks,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
