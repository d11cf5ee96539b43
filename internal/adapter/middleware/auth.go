package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys under which the resolved caller identity is stored.
const (
	CtxUserID   = "auth_user_id"
	CtxUserRole = "auth_user_role"
)

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": msg})
}

// Auth resolves the caller from a Bearer token and stores {id, role} in the
// request context. A missing or invalid credential short-circuits with 401
// before any handler runs.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "missing authorization header")
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return unauthorized(c, "malformed authorization header")
			}

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !tok.Valid {
				return unauthorized(c, "invalid or expired token")
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "invalid token claims")
			}
			userID, _ := claims["user_id"].(string)
			role, _ := claims["role"].(string)
			if userID == "" {
				return unauthorized(c, "invalid token claims")
			}

			c.Set(CtxUserID, userID)
			c.Set(CtxUserRole, role)
			return next(c)
		}
	}
}

// RequireAdmin gates administrative routes; it must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(CtxUserRole).(string); role != "admin" {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false, "message": "admin access required",
				})
			}
			return next(c)
		}
	}
}
