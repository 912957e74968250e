package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/planisoins/planning-api/internal/api/metrics"
	"github.com/planisoins/planning-api/internal/core/domain"
	"github.com/planisoins/planning-api/internal/core/ports"
)

// LoginThrottle limits authentication attempts per username and source IP.
type LoginThrottle interface {
	Allow(ctx context.Context, username, ip string) (bool, error)
}

type AuthHandler struct {
	authService ports.AuthService
	throttle    LoginThrottle
	logger      zerolog.Logger
}

// NewAuthHandler creates an AuthHandler. throttle may be nil, in which case
// no attempt limiting is applied.
func NewAuthHandler(authService ports.AuthService, throttle LoginThrottle, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	if h.throttle != nil {
		allowed, err := h.throttle.Allow(c.Request().Context(), username, c.RealIP())
		if err != nil {
			// Fail open: a throttle outage must not lock everyone out.
			h.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return domain.ErrTooManyAttempts
		}
	}

	token, user, err := h.authService.Login(c.Request().Context(), username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// ChangePassword lets the authenticated user replace their own password.
//
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204   "password updated"
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profile/password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), actor.ID, req.CurrentPassword, req.NewPassword); err != nil {
		if err == domain.ErrInvalidCredentials {
			// The user is authenticated; a bad current password is a client
			// mistake, not a session problem.
			return echo.NewHTTPError(http.StatusBadRequest, "current password incorrect")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
