package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"programboard/internal/auth"
)

const (
	// SessionCookieName is the cookie browsers carry the session token in.
	SessionCookieName = "session_token"
	// AdminIDLocalKey is the context locals key for the authenticated admin id.
	AdminIDLocalKey = "admin_id"
)

// RequireAuth guards admin routes. It accepts the session token from an
// Authorization Bearer header or the session cookie, verifies it, and stores
// the admin id in context locals. Requests without a valid token get a 401
// with the same body regardless of why the token was rejected.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := ""
		if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
			tokenString = strings.TrimPrefix(h, "Bearer ")
		} else if cookie := c.Cookies(SessionCookieName); cookie != "" {
			tokenString = cookie
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}

		adminID, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}

		c.Locals(AdminIDLocalKey, adminID)
		return c.Next()
	}
}
