package http

import (
	"context"
	stdhttp "net/http"
	"testing"

	domain "loantrack-backend/internal/domain/user"
	"loantrack-backend/internal/testutil/usermock"
	uc "loantrack-backend/internal/usecase/user"
)

func TestProfile_HidesPasswordHash(t *testing.T) {
	e := newEchoWithValidator()
	h := NewUserHandler(uc.NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID, Name: "Asha", Email: "asha@example.com", PasswordHash: "$2a$10$x"}, nil
		},
	}))

	c, rec := newLoanContext(e, stdhttp.MethodGet, "/api/users/profile", nil)
	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	u, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("user payload missing: %v", body)
	}
	if u["user_id"] != testCaller {
		t.Fatalf("user_id = %v, want caller", u["user_id"])
	}
	if _, leaked := u["password_hash"]; leaked {
		t.Fatal("password hash leaked in response")
	}
}

func TestUpdateProfile_PartialBody(t *testing.T) {
	e := newEchoWithValidator()
	stored := &domain.User{UserID: testCaller, Name: "Asha", City: "Pune"}
	h := NewUserHandler(uc.NewUsecase(&usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domain.User, error) { return stored, nil },
		SaveFn:        func(ctx context.Context, u *domain.User) error { return nil },
	}))

	c, rec := newLoanContext(e, stdhttp.MethodPut, "/api/users/profile", mustJSON(map[string]any{
		"phone": "12345",
	}))
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	u := body["user"].(map[string]any)
	if u["phone"] != "12345" {
		t.Fatalf("phone = %v", u["phone"])
	}
	if u["city"] != "Pune" {
		t.Fatalf("city changed: %v", u["city"])
	}
}

func TestListUsers_ReturnsTotal(t *testing.T) {
	e := newEchoWithValidator()
	h := NewUserHandler(uc.NewUsecase(&usermock.Repo{
		ListFn: func(ctx context.Context, limit int) ([]domain.User, error) {
			return []domain.User{{UserID: "a"}, {UserID: "b"}}, nil
		},
	}))

	c, rec := newLoanContext(e, stdhttp.MethodGet, "/api/users", nil)
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	body := decodeEnvelope(t, rec)
	if body["total"] != float64(2) {
		t.Fatalf("total = %v, want 2", body["total"])
	}
}
