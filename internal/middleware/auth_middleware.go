package middleware

import (
	"strings"

	"quizmaster/internal/domain"
	"quizmaster/internal/logger"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	IdentityKey         = "identity" // Key for storing the caller's domain.Identity in fiber.Ctx locals
	TokenKey            = "token"
)

// TokenFromRequest returns the session token of the request. The
// Authorization header wins over the session cookie.
func TokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if authHeader := c.Get(AuthorizationHeader); strings.HasPrefix(authHeader, BearerSchema) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
	}
	return c.Cookies(cookieName)
}

// Authenticate resolves the caller of every request. A missing or invalid
// token leaves the request anonymous; RequireLogin and RequireAdmin decide
// whether that is acceptable.
func Authenticate(authService service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := TokenFromRequest(c, cookieName)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := authService.ValidateToken(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("Authenticate: token rejected, proceeding as anonymous.",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Next()
		}

		c.Locals(IdentityKey, domain.Identity{UserID: claims.UserID, IsAdmin: claims.IsAdmin})
		c.Locals(TokenKey, tokenString)
		return c.Next()
	}
}

// IdentityFrom returns the caller set by Authenticate, or the anonymous
// identity.
func IdentityFrom(c *fiber.Ctx) domain.Identity {
	identity, _ := c.Locals(IdentityKey).(domain.Identity)
	return identity
}

// RequireLogin rejects anonymous callers with 401.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IdentityFrom(c).Authenticated() {
			return domain.NewUnauthorizedError("login required")
		}
		return c.Next()
	}
}

// RequireAdmin rejects anonymous callers with 401 and students with 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFrom(c)
		if !identity.Authenticated() {
			return domain.NewUnauthorizedError("login required")
		}
		if !identity.IsAdmin {
			return domain.NewForbiddenError("administrator access required")
		}
		return c.Next()
	}
}
