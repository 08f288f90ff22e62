package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ibretsam/eCommerce-API/internal/api/metrics"
	"github.com/ibretsam/eCommerce-API/internal/core/domain"
	"github.com/ibretsam/eCommerce-API/internal/core/ports"
)

// AuthHandler handles HTTP requests for the auth gateway.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new user account and its mirrored profile.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  domain.UserProfile
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	profile, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, profile)
}

// Login exchanges credentials for a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]any
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidation("invalid request body")
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Logout revokes all outstanding sessions for the authenticated user.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), uid); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// VerifyToken checks a token and returns the uid it belongs to.
//
// @Summary      Verify a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyTokenRequest  true  "Token to verify"
// @Success      200   {object}  uidResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/auth/verify-token [post]
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req verifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidation("invalid request body")
	}

	uid, err := h.service.VerifyToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, uidResponse{UID: uid})
}

// Me returns the authenticated user's profile document.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.UserProfile
// @Failure      404  {object}  map[string]any
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.CurrentUser(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
