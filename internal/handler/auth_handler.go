package handler

import (
	"time"

	"quizmaster/internal/config"
	"quizmaster/internal/dto"
	"quizmaster/internal/logger"
	"quizmaster/internal/middleware"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.AuthService
	jwtCfg      config.JWTConfig
}

func NewAuthHandler(authService service.AuthService, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtCfg:      jwtCfg,
	}
}

// Register godoc
// @Summary Register a student
// @Description Creates a student account. Usernames are unique.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.UserProfileResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	profile, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// Login godoc
// @Summary Log in
// @Description Issues a session token, returned in the body and as a cookie.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.jwtCfg.CookieName,
		Value:    resp.Token,
		Expires:  resp.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.jwtCfg.CookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(resp)
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := middleware.TokenFromRequest(c, h.jwtCfg.CookieName)
	if err := h.authService.Logout(c.UserContext(), token); err != nil {
		logger.Get().Error("Failed to revoke session token", zap.Error(err))
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.jwtCfg.CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.jwtCfg.CookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile, err := h.authService.GetUser(c.UserContext(), middleware.IdentityFrom(c).UserID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
