package handlers_test

import (
	"net/http"
	"testing"

	"blog-api/internal/models"
	"blog-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	app, db := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"fullName": "Alice Doe",
		"email":    "A@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "a@x.com", user["email"], "email is stored lowercase")
	assert.Equal(t, "Alice Doe", user["fullName"])
	assert.Equal(t, models.DefaultAvatarURL, user["image"])
	assert.NotContains(t, user, "password")

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "a@x.com").Error)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.Equal(t, models.StatusActive, stored.Status)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "Alice", "a@x.com", "secret1", models.RoleUser, models.StatusActive)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"fullName": "Other Alice",
		"email":    "A@X.COM",
		"password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupApp(t)

	cases := map[string]map[string]interface{}{
		"missing full name": {"email": "a@x.com", "password": "secret1"},
		"bad email":         {"fullName": "Alice", "email": "nope", "password": "secret1"},
		"short password":    {"fullName": "Alice", "email": "a@x.com", "password": "abc"},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "Alice", "a@x.com", "secret1", models.RoleUser, models.StatusActive)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok, "login returns a token")

	claims, err := services.NewJWTService().ValidateToken(token)
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "a@x.com").Error)
	assert.Equal(t, stored.ID, claims.UserID)
}

func TestLoginWrongCredentials(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "Alice", "a@x.com", "secret1", models.RoleUser, models.StatusActive)

	wrongPassword := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "a@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	wrongBody := decodeBody(t, wrongPassword)

	unknownEmail := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)
	unknownBody := decodeBody(t, unknownEmail)

	// The response must not reveal which factor was wrong
	assert.Equal(t, wrongBody["message"], unknownBody["message"])
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db, "Alice", "a@x.com", "secret1", models.RoleUser, models.StatusActive)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	me := body["user"].(map[string]interface{})
	assert.Equal(t, user.ID.String(), me["id"])
	assert.NotContains(t, me, "password")

	unauthenticated := doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, unauthenticated.StatusCode)
}
