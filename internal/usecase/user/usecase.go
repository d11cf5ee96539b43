package user

import (
	"context"
	"errors"

	"loantrack-backend/internal/domain/user"

	"gorm.io/gorm"
)

// AdminListLimit caps the administrative user listing.
const AdminListLimit = 50

type Usecase struct{ users user.Repository }

func NewUsecase(users user.Repository) *Usecase { return &Usecase{users: users} }

func (u *Usecase) Profile(ctx context.Context, userID string) (*user.User, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	return usr, err
}

// UpdateProfileInput updates only the fields that are present; nil pointers
// leave the stored value untouched.
type UpdateProfileInput struct {
	Name           *string
	Phone          *string
	Address        *string
	City           *string
	State          *string
	ZipCode        *string
	AadharNumber   *string
	PanNumber      *string
	MonthlyIncome  *float64
	EmploymentType *string
	Company        *string
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*user.User, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&usr.Name, in.Name)
	setStr(&usr.Phone, in.Phone)
	setStr(&usr.Address, in.Address)
	setStr(&usr.City, in.City)
	setStr(&usr.State, in.State)
	setStr(&usr.ZipCode, in.ZipCode)
	setStr(&usr.AadharNumber, in.AadharNumber)
	setStr(&usr.PanNumber, in.PanNumber)
	setStr(&usr.EmploymentType, in.EmploymentType)
	setStr(&usr.Company, in.Company)
	if in.MonthlyIncome != nil {
		usr.MonthlyIncome = *in.MonthlyIncome
	}

	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// List returns up to AdminListLimit users for the administrative view.
func (u *Usecase) List(ctx context.Context) ([]user.User, error) {
	return u.users.List(ctx, AdminListLimit)
}
