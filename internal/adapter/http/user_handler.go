package http

import (
	"net/http"

	"loantrack-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) Profile(c echo.Context) error {
	u, err := h.uc.Profile(c.Request().Context(), callerID(c))
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "", echo.Map{"user": u})
}

type updateProfileReq struct {
	Name           *string  `json:"name"`
	Phone          *string  `json:"phone"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	State          *string  `json:"state"`
	ZipCode        *string  `json:"zip_code"`
	AadharNumber   *string  `json:"aadhar_number"`
	PanNumber      *string  `json:"pan_number"`
	MonthlyIncome  *float64 `json:"monthly_income" validate:"omitempty,gte=0"`
	EmploymentType *string  `json:"employment_type"`
	Company        *string  `json:"company"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	u, err := h.uc.UpdateProfile(c.Request().Context(), callerID(c), user.UpdateProfileInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		AadharNumber:   req.AadharNumber,
		PanNumber:      req.PanNumber,
		MonthlyIncome:  req.MonthlyIncome,
		EmploymentType: req.EmploymentType,
		Company:        req.Company,
	})
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "profile updated", echo.Map{"user": u})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "", echo.Map{"users": users, "total": len(users)})
}
