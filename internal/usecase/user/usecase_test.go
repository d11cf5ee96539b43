package user

import (
	"context"
	"errors"
	"testing"

	domain "loantrack-backend/internal/domain/user"
	"loantrack-backend/internal/testutil/usermock"

	"gorm.io/gorm"
)

const callerID = "cccccccccccccccccccccccccccccccc"

func TestProfile_NotFound(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	if _, err := uc.Profile(context.Background(), callerID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfile_OnlyProvidedFieldsChange(t *testing.T) {
	stored := &domain.User{
		UserID: callerID, Name: "Asha", Phone: "111", City: "Pune", MonthlyIncome: 50000,
	}
	uc := NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domain.User, error) { return stored, nil },
		SaveFn:        func(ctx context.Context, u *domain.User) error { return nil },
	})

	phone := "222"
	income := 60000.0
	u, err := uc.UpdateProfile(context.Background(), callerID, UpdateProfileInput{
		Phone: &phone, MonthlyIncome: &income,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if u.Phone != "222" || u.MonthlyIncome != 60000 {
		t.Fatalf("updated fields not applied: %+v", u)
	}
	if u.Name != "Asha" || u.City != "Pune" {
		t.Fatalf("untouched fields changed: %+v", u)
	}
}

func TestList_UsesAdminCap(t *testing.T) {
	var gotLimit int
	uc := NewUsecase(&usermock.Repo{
		ListFn: func(ctx context.Context, limit int) ([]domain.User, error) {
			gotLimit = limit
			return []domain.User{{UserID: callerID}}, nil
		},
	})

	users, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLimit != AdminListLimit {
		t.Fatalf("limit = %d, want %d", gotLimit, AdminListLimit)
	}
	if len(users) != 1 {
		t.Fatalf("len = %d", len(users))
	}
}
