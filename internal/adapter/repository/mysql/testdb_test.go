package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID               uint64 `gorm:"primaryKey;column:id"`
	LoanID           string `gorm:"size:32;column:loan_id"`
	UserID           string `gorm:"size:32;column:user_id"`
	Amount           float64
	TermYears        int    `gorm:"column:term_years"`
	Category         string `gorm:"type:text"`
	InterestRate     float64
	MonthlyEMI       float64
	TotalInterest    float64
	TotalAmount      float64
	Status           string `gorm:"type:text"`
	Purpose          string
	ApprovalDate     *time.Time
	DisbursementDate *time.Time
	RejectionReason  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt
}

func (loanSQLite) TableName() string { return "loans" }

type documentSQLite struct {
	ID      uint64 `gorm:"primaryKey;column:id"`
	LoanRef uint64 `gorm:"column:loan_ref;index"`
	Name    string
	URL     string
}

func (documentSQLite) TableName() string { return "loan_documents" }

type paymentSQLite struct {
	ID            uint64 `gorm:"primaryKey;column:id"`
	PaymentID     string `gorm:"size:32;column:payment_id"`
	LoanID        string `gorm:"size:32;column:loan_id"`
	UserID        string `gorm:"size:32;column:user_id"`
	Amount        float64
	PaymentDate   time.Time
	DueDate       *time.Time
	Status        string `gorm:"type:text"`
	TransactionID string
	Method        string `gorm:"column:payment_method;type:text"`
	Remarks       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt
}

func (paymentSQLite) TableName() string { return "payments" }

type userSQLite struct {
	ID                 uint64 `gorm:"primaryKey;column:id"`
	UserID             string `gorm:"size:32;column:user_id"`
	Name               string
	Email              string
	PasswordHash       string `gorm:"column:password_hash"`
	Role               string `gorm:"type:text"`
	Phone              string
	Address            string
	City               string
	State              string
	ZipCode            string
	AadharNumber       string
	PanNumber          string
	MonthlyIncome      float64
	EmploymentType     string
	Company            string
	TotalLoansApplied  int
	TotalLoansApproved int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt
}

func (userSQLite) TableName() string { return "users" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the enum-typed domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &documentSQLite{}, &paymentSQLite{}, &userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
