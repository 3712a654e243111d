package middleware

import (
	"fmt"
	"strings"

	"blog-api/internal/config"
	"blog-api/internal/models"
	"blog-api/internal/services"
	"blog-api/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserKey is the request-local key the authenticated user is stored under.
const UserKey = "user"

// AuthMiddleware holds the store handle and token verifier for the
// authorization gate.
type AuthMiddleware struct {
	db  *gorm.DB
	jwt *services.JWTService
}

func NewAuthMiddleware(db *gorm.DB, jwt *services.JWTService) *AuthMiddleware {
	return &AuthMiddleware{db: db, jwt: jwt}
}

// RequireAuth gates routes that need an authenticated caller. It extracts the
// bearer token, verifies it and resolves the subject to a user record; any
// failure ends the request with 401.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c.Get("Authorization"))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
		}

		user, err := m.resolveUser(tokenString)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.InvalidToken, nil)
		}

		c.Locals(UserKey, *user)
		return c.Next()
	}
}

// OptionalAuth attaches the authenticated user when a valid token is present
// but never fails the request.
func (m *AuthMiddleware) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c.Get("Authorization"))
		if err != nil {
			return c.Next()
		}

		if user, err := m.resolveUser(tokenString); err == nil {
			c.Locals(UserKey, *user)
		}
		return c.Next()
	}
}

// adminGuard is one predicate in the ordered admin gate chain.
type adminGuard struct {
	passes  func(user *models.User) bool
	status  int
	message func() string
}

// adminGuards are evaluated in order, short-circuiting on the first failure.
// A nil user means the request reached the gate unauthenticated.
var adminGuards = []adminGuard{
	{
		passes:  func(user *models.User) bool { return user != nil },
		status:  fiber.StatusUnauthorized,
		message: func() string { return config.Messages.Auth.Error.TokenRequired },
	},
	{
		passes:  func(user *models.User) bool { return user.Role == models.RoleAdmin },
		status:  fiber.StatusForbidden,
		message: func() string { return config.Messages.Auth.Error.AdminRequired },
	},
	{
		passes:  func(user *models.User) bool { return user.Status == models.StatusActive },
		status:  fiber.StatusForbidden,
		message: func() string { return config.Messages.Auth.Error.AdminInactive },
	},
}

// RequireAdmin gates admin-only routes. It must be composed after
// RequireAuth.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user *models.User
		if u, ok := c.Locals(UserKey).(models.User); ok {
			user = &u
		}

		for _, guard := range adminGuards {
			if !guard.passes(user) {
				return utils.ErrorResponse(c, guard.status, guard.message(), nil)
			}
		}
		return c.Next()
	}
}

// AuthenticatedUser returns the user attached by RequireAuth or OptionalAuth.
func AuthenticatedUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(UserKey).(models.User)
	return user, ok
}

func (m *AuthMiddleware) resolveUser(tokenString string) (*models.User, error) {
	claims, err := m.jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := m.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func extractBearerToken(header string) (string, error) {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("missing bearer token")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", fmt.Errorf("missing bearer token")
	}
	return token, nil
}
