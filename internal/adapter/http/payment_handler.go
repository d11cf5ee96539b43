package http

import (
	"net/http"
	"time"

	"loantrack-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	LoanID  string     `json:"loan_id" validate:"required"`
	Amount  float64    `json:"amount" validate:"required,gt=0"`
	Method  string     `json:"payment_method" validate:"omitempty,paymethod"`
	Remarks string     `json:"remarks"`
	DueDate *time.Time `json:"due_date"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	p, err := h.uc.Record(c.Request().Context(), callerID(c), payment.RecordPaymentInput{
		LoanID:  req.LoanID,
		Amount:  req.Amount,
		Method:  req.Method,
		Remarks: req.Remarks,
		DueDate: req.DueDate,
	})
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusCreated, "payment recorded successfully", echo.Map{"payment": p})
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	ps, err := h.uc.ListByOwner(c.Request().Context(), callerID(c))
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "", echo.Map{"payments": ps})
}

func (h *PaymentHandler) ListLoanPayments(c echo.Context) error {
	ps, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loanId"))
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "", echo.Map{"payments": ps})
}
