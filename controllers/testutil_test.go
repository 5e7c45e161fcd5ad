package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/payments"
	"github.com/joltcab/joltcab-api/routes"
)

// stubGateway stands in for the payment processor in tests. Charge recording
// is mutex-guarded so tests may issue requests from multiple goroutines.
type stubGateway struct {
	mu        sync.Mutex
	chargeErr error
	charges   []chargeCall
}

type chargeCall struct {
	AmountMinor     int64
	Currency        string
	PaymentMethodID string
}

func (s *stubGateway) Charge(_ context.Context, amountMinor int64, currency, paymentMethodID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charges = append(s.charges, chargeCall{amountMinor, currency, paymentMethodID})
	return s.chargeErr
}

func (s *stubGateway) CreateIntent(_ context.Context, amountMinor int64, currency string) (*payments.Intent, error) {
	return &payments.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       float64(amountMinor) / 100,
	}, nil
}

// setupTest wires a fresh in-memory database, a stub payment gateway and the
// full router for one test.
func setupTest(t *testing.T) (*gin.Engine, *stubGateway) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Keep every query on the one connection holding the in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateDB(db))
	config.DB = db

	gateway := &stubGateway{}
	payments.Default = gateway

	gin.SetMode(gin.TestMode)
	return routes.SetupRouter(), gateway
}

// performRequest runs one request through the router
func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeResponse unmarshals a standard response envelope
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	resp := decodeResponse(t, w)
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

var userCounter int

// registerUser creates a user through the API and returns its token and id
func registerUser(t *testing.T, router *gin.Engine, role string) (token, userID string) {
	t.Helper()
	userCounter++

	w := performRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":     fmt.Sprintf("user%d@example.com", userCounter),
		"password":  "Password1",
		"full_name": "Test Rider",
		"phone":     "+15550001111",
		"role":      role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := responseData(t, w)
	token, _ = data["access_token"].(string)
	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	userID, _ = user["id"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, userID)
	return token, userID
}
