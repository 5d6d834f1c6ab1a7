package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"programboard/internal/auth"
	"programboard/internal/http/middleware"
	"programboard/internal/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin and sets the session cookie. The token is also
// returned in the body for non-browser clients that prefer a Bearer header.
func Login(authSvc service.AuthService, tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		token, err := authSvc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
			}
			log.Printf("login failed: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "Database error")
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Expires:  time.Now().Add(tokens.TTL()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(fiber.Map{"success": true, "message": "Login successful", "token": token})
	}
}

// Logout clears the session cookie. Tokens are stateless, so there is nothing
// server-side to destroy; the cookie expiry is the logout.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return apiSuccess(c, "Logout successful")
	}
}
