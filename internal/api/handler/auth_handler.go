package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelhub/booking-system/internal/core/domain"
	"github.com/travelhub/booking-system/internal/core/ports"
)

type AuthHandler struct {
	userService ports.UserService
}

func NewAuthHandler(userService ports.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type registerResponse struct {
	Message string           `json:"message"`
	User    *domain.Identity `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		User:    identity,
	})
}

// Login authenticates a user and returns a JWT access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, _, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Profile returns the authenticated caller's profile.
//
// @Summary      Get profile information
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Profile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.Profile(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// Validate confirms the caller holds the Admin role. The route-level
// guard has already denied everyone else, so reaching the handler means
// access is granted.
//
// @Summary      Admin access probe
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Admin access granted"})
}
