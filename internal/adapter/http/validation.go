package http

import (
	"loantrack-backend/internal/domain/loan"
	"loantrack-backend/internal/domain/payment"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("loancategory", func(fl validator.FieldLevel) bool {
		return loan.ValidCategory(loan.Category(fl.Field().String()))
	})
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		return loan.ValidStatus(loan.Status(fl.Field().String()))
	})
	_ = v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
		return payment.ValidMethod(payment.Method(fl.Field().String()))
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "loancategory":
			out = append(out, FieldError{Field: field, Message: "must be one of Personal, Home, Auto, Education, Business"})
		case "loanstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of Pending, Approved, Rejected, Disbursed, Completed"})
		case "paymethod":
			out = append(out, FieldError{Field: field, Message: "must be one of Bank Transfer, Card, UPI, Cheque"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
