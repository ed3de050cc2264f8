package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	api.Get("/me", AuthMiddleware, MeAPI)
	api.Post("/change-password", AuthMiddleware, ChangePasswordAPI)
}

// AuthMiddleware resolves the session cookie (or Bearer header) to an
// identity and stores it in the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(CookieName)
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, no token"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)
	return c.Next()
}

// RequireRoles rejects requests whose resolved role is not in the
// allow-list. Must run after AuthMiddleware.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(models.Role)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, user not found"})
		}

		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "User role '" + string(role) + "' is not authorized to access this route",
		})
	}
}

// CurrentUserID returns the authenticated user's id from the request context.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// CurrentRole returns the authenticated user's role from the request context.
func CurrentRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("user_role").(models.Role)
	return role
}
