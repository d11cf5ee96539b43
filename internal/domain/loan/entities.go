package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("loan not found")

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusDisbursed Status = "Disbursed"
	StatusCompleted Status = "Completed"
)

// ValidStatus reports whether s is one of the five loan states.
// Any valid status may be set from any other: transitions are
// administrator-driven with no ordering enforced.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDisbursed, StatusCompleted:
		return true
	}
	return false
}

type Category string

const (
	CategoryPersonal  Category = "Personal"
	CategoryHome      Category = "Home"
	CategoryAuto      Category = "Auto"
	CategoryEducation Category = "Education"
	CategoryBusiness  Category = "Business"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryPersonal, CategoryHome, CategoryAuto, CategoryEducation, CategoryBusiness:
		return true
	}
	return false
}

type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	UserID string `gorm:"size:32;index:idx_loans_user" json:"user_id"`

	Amount       float64  `gorm:"type:decimal(18,2)" json:"loan_amount"`
	TermYears    int      `gorm:"column:term_years" json:"loan_term"`
	Category     Category `gorm:"type:enum('Personal','Home','Auto','Education','Business')" json:"loan_type"`
	InterestRate float64  `gorm:"type:decimal(6,2);default:12" json:"interest_rate"`

	// Derived once at creation from the EMI formula, never recomputed.
	MonthlyEMI    float64 `gorm:"type:decimal(18,2)" json:"monthly_emi"`
	TotalInterest float64 `gorm:"type:decimal(18,2)" json:"total_interest"`
	TotalAmount   float64 `gorm:"type:decimal(18,2)" json:"total_amount"`

	Status           Status     `gorm:"type:enum('Pending','Approved','Rejected','Disbursed','Completed');default:'Pending'" json:"status"`
	Purpose          string     `gorm:"type:text" json:"purpose,omitempty"`
	ApprovalDate     *time.Time `json:"approval_date,omitempty"`
	DisbursementDate *time.Time `json:"disbursement_date,omitempty"`
	RejectionReason  string     `gorm:"type:text" json:"rejection_reason,omitempty"`

	Documents []Document `gorm:"foreignKey:LoanRef;references:ID" json:"documents,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Document is a supporting file attached to an application (a display name
// plus a location reference; the file itself lives elsewhere).
type Document struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanRef uint64 `gorm:"column:loan_ref;index" json:"-"`
	Name    string `gorm:"size:255" json:"name"`
	URL     string `gorm:"type:text" json:"url"`
}

func (Document) TableName() string { return "loan_documents" }
