package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"blog-api/internal/models"
	"blog-api/internal/routes"
	"blog-api/internal/services"
	"blog-api/pkg/database"
	"blog-api/pkg/utils"
	"blog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	f, err := os.CreateTemp("", "blog-api-test-*.db")
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

// setupApp builds a Fiber app wired to a fresh test database.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret-key-that-is-long-enough-0000")
	validator.InitValidator()

	db := testDB(t)
	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, fullName, email, password string, role models.Role, status models.UserStatus) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		FullName: fullName,
		Email:    email,
		Password: hash,
		Role:     role,
		Status:   status,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := services.NewJWTService().GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
