package http

import (
	"net/http"

	loanDomain "loantrack-backend/internal/domain/loan"
	"loantrack-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type docReq struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

type createLoanReq struct {
	Amount       float64  `json:"loan_amount" validate:"required,gt=0"`
	TermYears    int      `json:"loan_term" validate:"required,gt=0"`
	Category     string   `json:"loan_type" validate:"required,loancategory"`
	Purpose      string   `json:"purpose"`
	InterestRate *float64 `json:"interest_rate" validate:"omitempty,gte=0"`
	Documents    []docReq `json:"documents" validate:"omitempty,dive"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	in := loan.CreateLoanInput{
		Amount:       req.Amount,
		TermYears:    req.TermYears,
		Category:     req.Category,
		Purpose:      req.Purpose,
		InterestRate: req.InterestRate,
	}
	for _, d := range req.Documents {
		in.Documents = append(in.Documents, loan.DocumentInput{Name: d.Name, URL: d.URL})
	}

	l, err := h.uc.Create(c.Request().Context(), callerID(c), in)
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusCreated, "loan application created successfully", echo.Map{"loan": l})
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	loans, err := h.uc.ListByOwner(c.Request().Context(), callerID(c))
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "", echo.Map{"loans": loans})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "", echo.Map{"loan": l})
}

type updateStatusReq struct {
	Status          string `json:"status" validate:"required,loanstatus"`
	RejectionReason string `json:"rejection_reason"`
}

func (h *LoanHandler) UpdateLoanStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	l, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"),
		loanDomain.Status(req.Status), req.RejectionReason)
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "loan updated", echo.Map{"loan": l})
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, "loan deleted", nil)
}
