// middleware/auth.go
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth returns a middleware that requires a valid Bearer token and stores
// the caller's identity in request locals.
func Auth(jwtSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization header"})
		}

		claims, err := parseClaims(token, jwtSecret)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
		}

		c.Locals("userId", claims["user_id"])
		c.Locals("username", claims["username"])
		return c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, or returns
// an empty string.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// ParseToken validates a raw token string and returns the user id and
// username it carries. Used by transports that cannot send headers, such as
// websocket upgrades passing the token as a query parameter.
func ParseToken(token string, jwtSecret []byte) (userID, username string, err error) {
	claims, err := parseClaims(token, jwtSecret)
	if err != nil {
		return "", "", err
	}
	userID, _ = claims["user_id"].(string)
	username, _ = claims["username"].(string)
	if userID == "" {
		return "", "", fiber.NewError(401, "Invalid token claims")
	}
	return userID, username, nil
}

func parseClaims(token string, jwtSecret []byte) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fiber.NewError(401, "Invalid or expired token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(401, "Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, fiber.NewError(401, "Token expired")
	}

	return claims, nil
}

// GetUserID reads the authenticated user id set by Auth.
func GetUserID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}
	if id, ok := userID.(string); ok && id != "" {
		return id, nil
	}
	return "", fiber.NewError(401, "Invalid user ID format")
}
