package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "jobhaven/internal/errors"
)

// claimsContextKey is where Authenticated stores the decoded claims.
const claimsContextKey = "user"

// Authenticated is the first gate: it reads the session token from the
// cookie store and verifies it. A missing cookie answers 401; a tampered,
// malformed or expired token answers 403. On success the decoded claims
// are attached to the request context for the handlers behind the gate.
func Authenticated(tokens *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "cookie:" + CookieName,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Verification errors come from ParseTokenFunc; anything else
			// means no token could be extracted from the request.
			if errors.Is(err, ErrTokenInvalid) || errors.Is(err, ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusForbidden)
			}
			return echo.NewHTTPError(http.StatusUnauthorized)
		},
	})
}

// RequireRecruiter is the second gate. It only makes sense behind
// Authenticated: routes must register the two in that order. A
// non-recruiter user gets the FAIL body and the handler never runs.
func RequireRecruiter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized)
			}
			if !claims.Recruiter {
				return c.JSON(http.StatusOK, apperrors.Fail("You're not allowed to access this page"))
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the decoded claims attached by Authenticated.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}
