package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobhaven/internal/auth"
	apperrors "jobhaven/internal/errors"
	"jobhaven/internal/service"
)

// AuthHandler handles signup, login, logout and session probes.
type AuthHandler struct {
	authService service.AuthService
	frontendURL string
}

// NewAuthHandler creates a new auth handler. frontendURL is the redirect
// target after signup and login.
func NewAuthHandler(authService service.AuthService, frontendURL string) *AuthHandler {
	return &AuthHandler{authService: authService, frontendURL: frontendURL}
}

// SignupRequest represents a signup request. Recruiter carries the raw
// checkbox value from the signup form; only "on" marks a recruiter.
type SignupRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required"`
	LastName  string `json:"lastName" form:"lastName" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required"`
	Recruiter string `json:"recruiter" form:"recruiter"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Signup godoc
// @Summary Sign up a new user
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request formData SignupRequest true "Signup data"
// @Success 302
// @Success 200 {object} map[string]string "email already taken"
// @Failure 500 {object} errors.StoreError
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.authService.Signup(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password, req.Recruiter == "on")
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			// Not a 4xx: a taken email answers 200, as documented.
			return c.JSON(http.StatusOK, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.NewStoreError("An error occurred", err))
	}

	return c.Redirect(http.StatusFound, h.frontendURL)
}

// Login godoc
// @Summary Log in and set the session cookie
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request formData LoginRequest true "Credentials"
// @Success 302
// @Success 200 {object} errors.FailBody "wrong credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusOK, apperrors.Fail("User does not exist"))
		case errors.Is(err, service.ErrIncorrectPassword):
			return c.JSON(http.StatusOK, apperrors.Fail("Incorrect password"))
		default:
			return c.JSON(http.StatusOK, apperrors.Fail("Something went wrong"))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenExpiry.Seconds()),
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, h.frontendURL+"/jobfinder")
}

// Logout godoc
// @Summary Log out by expiring the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Overwrite with an already-expired cookie. Always succeeds.
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// IsLoggedIn godoc
// @Summary Report whether the session is valid
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Router /isloggedin [get]
func (h *AuthHandler) IsLoggedIn(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	return c.JSON(http.StatusOK, echo.Map{"isLoggedIn": true, "firstName": claims.FirstName})
}

// IsRecruiter godoc
// @Summary Report whether the session belongs to a recruiter
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Success 200 {object} errors.FailBody "not a recruiter"
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Router /isrecruiter [get]
func (h *AuthHandler) IsRecruiter(c echo.Context) error {
	// Reached only behind both gates; the recruiter check already passed.
	return c.JSON(http.StatusOK, echo.Map{"isRecruiter": true})
}
