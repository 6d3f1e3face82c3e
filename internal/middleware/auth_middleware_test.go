package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "qm_session"

// ManualMockAuthService implements service.AuthService for middleware tests.
type ManualMockAuthService struct {
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfileResponse, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) Logout(ctx context.Context, tokenString string) error {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateTokenFunc not set on mock")
}

func (m *ManualMockAuthService) GetUser(ctx context.Context, id int64) (*dto.UserProfileResponse, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) EnsureAdmin(ctx context.Context) error {
	panic("not implemented in mock")
}

func newAuthApp(mockSvc *ManualMockAuthService, guards ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.Authenticate(mockSvc, testCookie))
	handlers := append(guards, func(c *fiber.Ctx) error {
		return c.JSON(middleware.IdentityFrom(c))
	})
	app.Get("/whoami", handlers...)
	return app
}

func validTokens(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	switch tokenString {
	case "student_token":
		return &dto.AuthClaims{UserID: 7}, nil
	case "admin_token":
		return &dto.AuthClaims{UserID: 1, IsAdmin: true}, nil
	default:
		return nil, domain.NewUnauthorizedError("invalid session token")
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		cookie     string
		expected   domain.Identity
	}{
		{name: "No credentials", expected: domain.Identity{}},
		{name: "Bearer token", authHeader: "Bearer student_token", expected: domain.Identity{UserID: 7}},
		{name: "Session cookie", cookie: "admin_token", expected: domain.Identity{UserID: 1, IsAdmin: true}},
		{name: "Header wins over cookie", authHeader: "Bearer student_token", cookie: "admin_token", expected: domain.Identity{UserID: 7}},
		{name: "Invalid token is anonymous", authHeader: "Bearer forged", expected: domain.Identity{}},
		{name: "Non-bearer scheme falls back to cookie", authHeader: "Basic abc", expected: domain.Identity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(&ManualMockAuthService{ValidateTokenFunc: validTokens})

			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}
			if tt.cookie != "" {
				req.Header.Set("Cookie", testCookie+"="+tt.cookie)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			var identity domain.Identity
			body, _ := io.ReadAll(resp.Body)
			require.NoError(t, json.Unmarshal(body, &identity))
			assert.Equal(t, tt.expected, identity)
		})
	}
}

func TestRequireLoginAndAdmin(t *testing.T) {
	tests := []struct {
		name           string
		guard          fiber.Handler
		authHeader     string
		expectedStatus int
	}{
		{"login: anonymous", middleware.RequireLogin(), "", fiber.StatusUnauthorized},
		{"login: student", middleware.RequireLogin(), "Bearer student_token", fiber.StatusOK},
		{"admin: anonymous", middleware.RequireAdmin(), "", fiber.StatusUnauthorized},
		{"admin: student", middleware.RequireAdmin(), "Bearer student_token", fiber.StatusForbidden},
		{"admin: admin", middleware.RequireAdmin(), "Bearer admin_token", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(&ManualMockAuthService{ValidateTokenFunc: validTokens}, tt.guard)

			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(middleware.TokenFromRequest(c, testCookie))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", testCookie+"=from_cookie")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "from_cookie", string(body))
}
