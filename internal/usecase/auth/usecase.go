package auth

import (
	"context"
	"errors"
	"time"

	"loantrack-backend/internal/domain/user"
	"loantrack-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = errors.New("required fields missing")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Usecase struct {
	users    user.Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewUsecase(users user.Repository, secret []byte, tokenTTL time.Duration) *Usecase {
	return &Usecase{users: users, secret: secret, tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register creates an account with a bcrypt password hash and returns the
// user together with a signed access token.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*user.User, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, "", ErrMissingFields
	}

	_, err := u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, "", user.ErrDuplicateEmail
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	usr := &user.User{
		UserID:       id.NewID32(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         user.RoleUser,
		Phone:        in.Phone,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, "", err
	}

	tok, err := u.sign(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, tok, nil
}

// Login verifies the password and returns the user with a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := u.sign(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, tok, nil
}

func (u *Usecase) sign(usr *user.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": usr.UserID,
		"role":    string(usr.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(u.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}
