package mysql

import (
	"context"
	"errors"
	"testing"

	domain "loantrack-backend/internal/domain/user"
	"loantrack-backend/pkg/id"

	"gorm.io/gorm"
)

func makeUser(email string) *domain.User {
	return &domain.User{
		UserID:       id.NewID32(),
		Name:         "Asha",
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
		Role:         domain.RoleUser,
	}
}

func TestUserCreateAndLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("asha@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if byID.Email != "asha@example.com" {
		t.Fatalf("email = %s", byID.Email)
	}

	byEmail, err := repo.GetByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.UserID != u.UserID {
		t.Fatalf("user id = %s", byEmail.UserID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown email: err = %v", err)
	}
}

func TestUserCounterIncrements(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("asha@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.IncrementLoansApplied(ctx, u.UserID); err != nil {
		t.Fatalf("IncrementLoansApplied: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := repo.IncrementLoansApproved(ctx, u.UserID); err != nil {
			t.Fatalf("IncrementLoansApproved #%d: %v", i, err)
		}
	}

	got, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.TotalLoansApplied != 1 {
		t.Fatalf("TotalLoansApplied = %d, want 1", got.TotalLoansApplied)
	}
	if got.TotalLoansApproved != 2 {
		t.Fatalf("TotalLoansApproved = %d, want 2", got.TotalLoansApproved)
	}

	if err := repo.IncrementLoansApplied(ctx, id.NewID32()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown user: err = %v", err)
	}
}

func TestUserList_Limit(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := repo.Create(ctx, makeUser(id.NewID32()+"@example.com")); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	got, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}
