package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`

	Name         string `gorm:"size:255" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255" json:"-"`
	Role         Role   `gorm:"type:enum('user','admin');default:'user'" json:"role"`

	Phone          string  `gorm:"size:32" json:"phone,omitempty"`
	Address        string  `gorm:"type:text" json:"address,omitempty"`
	City           string  `gorm:"size:128" json:"city,omitempty"`
	State          string  `gorm:"size:128" json:"state,omitempty"`
	ZipCode        string  `gorm:"size:16" json:"zip_code,omitempty"`
	AadharNumber   string  `gorm:"size:16" json:"aadhar_number,omitempty"`
	PanNumber      string  `gorm:"size:16" json:"pan_number,omitempty"`
	MonthlyIncome  float64 `gorm:"type:decimal(18,2)" json:"monthly_income,omitempty"`
	EmploymentType string  `gorm:"size:64" json:"employment_type,omitempty"`
	Company        string  `gorm:"size:255" json:"company,omitempty"`

	// Running counters, incremented as loan-side effects. They are never
	// decremented or recomputed from the loans table.
	TotalLoansApplied  int `gorm:"default:0" json:"total_loans_applied"`
	TotalLoansApproved int `gorm:"default:0" json:"total_loans_approved"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
