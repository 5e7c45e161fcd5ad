package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joltcab/joltcab-api/config"
)

func TestRegister(t *testing.T) {
	router, _ := setupTest(t)

	body := gin.H{
		"email":     "rider@example.com",
		"password":  "Password1",
		"full_name": "Jordan Rivera",
		"phone":     "+15550002222",
	}

	w := performRequest(t, router, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := responseData(t, w)
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "bearer", data["token_type"])

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "rider@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, 0.0, user["wallet_balance"])
	assert.NotContains(t, w.Body.String(), "Password1")

	t.Run("duplicate email is rejected", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/auth/register", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decodeResponse(t, w)["message"])
	})
}

func TestRegisterValidation(t *testing.T) {
	router, _ := setupTest(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "Password1", "full_name": "Jordan Rivera", "phone": "+15550002222"}},
		{"bad email", gin.H{"email": "not-an-email", "password": "Password1", "full_name": "Jordan Rivera", "phone": "+15550002222"}},
		{"weak password", gin.H{"email": "a@example.com", "password": "short", "full_name": "Jordan Rivera", "phone": "+15550002222"}},
		{"bad role", gin.H{"email": "a@example.com", "password": "Password1", "full_name": "Jordan Rivera", "phone": "+15550002222", "role": "superadmin"}},
		{"bad phone", gin.H{"email": "a@example.com", "password": "Password1", "full_name": "Jordan Rivera", "phone": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(t, router, http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestRegisterLookupFailure(t *testing.T) {
	router, _ := setupTest(t)

	// A broken store makes the duplicate-email lookup error without being a
	// not-found; registration must stop there instead of attempting the insert
	sqlDB, err := config.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := performRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":     "rider@example.com",
		"password":  "Password1",
		"full_name": "Jordan Rivera",
		"phone":     "+15550002222",
	}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to check existing user", decodeResponse(t, w)["message"])
}

func TestLogin(t *testing.T) {
	router, _ := setupTest(t)

	performRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":     "login@example.com",
		"password":  "Password1",
		"full_name": "Jordan Rivera",
		"phone":     "+15550002222",
	}, "")

	t.Run("valid credentials", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "login@example.com",
			"password": "Password1",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := responseData(t, w)
		assert.NotEmpty(t, data["access_token"])
		assert.Equal(t, "bearer", data["token_type"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "login@example.com",
			"password": "WrongPass1",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeResponse(t, w)["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "nobody@example.com",
			"password": "Password1",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeResponse(t, w)["message"])
	})
}

func TestGetMe(t *testing.T) {
	router, _ := setupTest(t)
	token, userID := registerUser(t, router, "user")

	t.Run("with token", func(t *testing.T) {
		w := performRequest(t, router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := responseData(t, w)
		user, ok := data["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, userID, user["id"])
	})

	t.Run("without token", func(t *testing.T) {
		w := performRequest(t, router, http.MethodGet, "/api/auth/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := performRequest(t, router, http.MethodGet, "/api/auth/me", nil, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	router, _ := setupTest(t)
	token, _ := registerUser(t, router, "user")

	t.Run("partial update", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPut, "/api/auth/profile", gin.H{
			"full_name": "Renamed Rider",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := responseData(t, w)
		user, ok := data["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Renamed Rider", user["full_name"])
		// Untouched fields keep their values
		assert.Equal(t, "+15550001111", user["phone"])
	})

	t.Run("empty update", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPut, "/api/auth/profile", gin.H{}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
