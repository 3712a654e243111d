package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"blog-api/internal/middleware"
	"blog-api/internal/models"
	"blog-api/internal/services"
	"blog-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	f, err := os.CreateTemp("", "blog-api-mw-test-*.db")
	require.NoError(t, err)
	dbPath := f.Name()
	require.NoError(t, f.Close())

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = os.Remove(dbPath)
	})

	return db
}

// gateApp mounts probe routes behind each gate mode.
func gateApp(t *testing.T) (*fiber.App, *gorm.DB, *services.JWTService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-that-is-long-enough-0000")

	db := testDB(t)
	jwtService := services.NewJWTService()
	gate := middleware.NewAuthMiddleware(db, jwtService)

	whoami := func(c *fiber.Ctx) error {
		if user, ok := middleware.AuthenticatedUser(c); ok {
			return c.JSON(fiber.Map{"id": user.ID})
		}
		return c.JSON(fiber.Map{"id": nil})
	}

	app := fiber.New()
	app.Get("/protected", gate.RequireAuth(), whoami)
	app.Get("/open", gate.OptionalAuth(), whoami)
	app.Get("/admin", gate.RequireAuth(), gate.RequireAdmin(), whoami)
	return app, db, jwtService
}

func request(t *testing.T, app *fiber.App, path, authorization string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role, status models.UserStatus) models.User {
	t.Helper()

	user := models.User{
		FullName: "Gate User",
		Email:    uuid.NewString() + "@x.com",
		Password: "irrelevant",
		Role:     role,
		Status:   status,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestRequireAuthStates(t *testing.T) {
	app, db, jwtService := gateApp(t)
	user := seedUser(t, db, models.RoleUser, models.StatusActive)

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	t.Run("no token", func(t *testing.T) {
		resp := request(t, app, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		resp := request(t, app, "/protected", "Token "+token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		resp := request(t, app, "/protected", "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token, missing user", func(t *testing.T) {
		ghost, err := jwtService.GenerateToken(models.User{ID: uuid.New()})
		require.NoError(t, err)

		resp := request(t, app, "/protected", "Bearer "+ghost)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("authenticated", func(t *testing.T) {
		resp := request(t, app, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestOptionalAuthNeverFails(t *testing.T) {
	app, db, jwtService := gateApp(t)
	user := seedUser(t, db, models.RoleUser, models.StatusActive)

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	for name, authorization := range map[string]string{
		"no token":      "",
		"invalid token": "Bearer garbage",
		"valid token":   "Bearer " + token,
	} {
		t.Run(name, func(t *testing.T) {
			resp := request(t, app, "/open", authorization)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestRequireAdminGuards(t *testing.T) {
	app, db, jwtService := gateApp(t)

	cases := []struct {
		name   string
		role   models.Role
		status models.UserStatus
		want   int
	}{
		{"active admin", models.RoleAdmin, models.StatusActive, http.StatusOK},
		{"plain user", models.RoleUser, models.StatusActive, http.StatusForbidden},
		{"suspended admin", models.RoleAdmin, models.StatusSuspended, http.StatusForbidden},
		{"banned admin", models.RoleAdmin, models.StatusBanned, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := seedUser(t, db, tc.role, tc.status)
			token, err := jwtService.GenerateToken(user)
			require.NoError(t, err)

			resp := request(t, app, "/admin", "Bearer "+token)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
