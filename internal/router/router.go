package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobhaven/internal/auth"
	"jobhaven/internal/config"
	apperrors "jobhaven/internal/errors"
	"jobhaven/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Catch-all error envelope for unmatched routes and uncaught errors
	e.HTTPErrorHandler = ErrorEnvelopeHandler

	e.Static("/", "public")

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "all right"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/joblist", jobHandler.ListJobs)
	api.GET("/jobdetails/:jobId", jobHandler.JobDetails)
	api.GET("/editjob/:jobId", jobHandler.EditJob)

	// Gated routes. Gate order is fixed: Authenticated always runs before
	// RequireRecruiter so the recruiter check only ever sees populated claims.
	authenticated := auth.Authenticated(tokens)
	api.GET("/isloggedin", authHandler.IsLoggedIn, authenticated)
	api.GET("/isrecruiter", authHandler.IsRecruiter, authenticated, auth.RequireRecruiter())
	api.POST("/jobpost", jobHandler.CreateJob, authenticated, auth.RequireRecruiter())
}

// ErrorEnvelopeHandler standardizes unmatched routes and uncaught handler
// errors into the {error:{status,message}} envelope.
func ErrorEnvelopeHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprintf("%v", he.Message)
	}

	// The API answers every unmatched request with 404, even when echo would
	// say 405 because the path is registered under another method.
	if status == http.StatusMethodNotAllowed {
		status = http.StatusNotFound
		message = "Route not found"
	}
	if status == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
		message = "Route not found"
	}

	if err := c.JSON(status, apperrors.NewEnvelope(status, message)); err != nil {
		c.Logger().Error(err)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
