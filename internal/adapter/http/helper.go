package http

import (
	"errors"
	"net/http"

	"loantrack-backend/internal/adapter/middleware"
	"loantrack-backend/internal/domain/emi"
	loanDomain "loantrack-backend/internal/domain/loan"
	paymentDomain "loantrack-backend/internal/domain/payment"
	userDomain "loantrack-backend/internal/domain/user"
	authUC "loantrack-backend/internal/usecase/auth"
	loanUC "loantrack-backend/internal/usecase/loan"
	paymentUC "loantrack-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

// callerID returns the identity the auth middleware resolved for this
// request. Protected routes never reach a handler without it.
func callerID(c echo.Context) string {
	v, _ := c.Get(middleware.CtxUserID).(string)
	return v
}

// Every response carries the success/message envelope; entity payloads ride
// alongside under their own keys.

func respond(c echo.Context, code int, message string, extra echo.Map) error {
	body := echo.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(code, body)
}

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"success": false, "message": message})
}

func failValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"success": false,
		"message": "required fields missing",
		"details": ToFieldErrors(err),
	})
}

// failErr maps domain/usecase errors onto the taxonomy: validation → 400,
// not-found → 404, bad credentials → 401, anything else → 500.
func failErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound):
		return fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, loanUC.ErrMissingFields),
		errors.Is(err, loanUC.ErrInvalidCategory),
		errors.Is(err, loanUC.ErrInvalidStatus),
		errors.Is(err, paymentUC.ErrMissingFields),
		errors.Is(err, paymentUC.ErrInvalidMethod),
		errors.Is(err, authUC.ErrMissingFields),
		errors.Is(err, userDomain.ErrDuplicateEmail),
		errors.Is(err, emi.ErrInvalidPrincipal),
		errors.Is(err, emi.ErrInvalidTerm),
		errors.Is(err, emi.ErrNegativeRate):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, authUC.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, err.Error())
	}
	return fail(c, http.StatusInternalServerError, err.Error())
}
