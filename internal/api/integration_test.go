package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"futsalbook/internal/config"
	"futsalbook/internal/logger"
	"futsalbook/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full booking flow against real Postgres and Redis. Configure via
// the usual env vars and set INTEGRATION_TEST=1 to enable.
func TestBookingFlow(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("set INTEGRATION_TEST=1 to run against live Postgres and Redis")
	}

	gin.SetMode(gin.TestMode)
	logger.Init("error", "text")

	cfg := config.Load()
	server := NewServer(cfg)
	defer server.Cleanup()

	router := server.GetRouter()

	doJSON := func(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
		var body bytes.Buffer
		if payload != nil {
			require.NoError(t, json.NewEncoder(&body).Encode(payload))
		}
		req := httptest.NewRequest(method, path, &body)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())

	// register and log in
	w := doJSON(http.MethodPost, "/api/register", "", models.RegisterRequest{
		Name:     "Integration Tester",
		Email:    email,
		Phone:    "081234567890",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(http.MethodPost, "/api/login", "", models.LoginRequest{
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.Token)
	token := auth.Token

	// duplicate email is rejected
	w = doJSON(http.MethodPost, "/api/register", "", models.RegisterRequest{
		Name:     "Second Tester",
		Email:    email,
		Phone:    "081234567890",
		Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// select venue and draft a slot
	w = doJSON(http.MethodPut, "/api/session/venue", token,
		models.SelectVenueRequest{VenueID: "venue-1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	w = doJSON(http.MethodPost, "/api/bookings/draft", token,
		models.CreateDraftRequest{Date: date, Time: "19:00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// checkout with a proof image
	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	require.NoError(t, mw.WriteField("payment_method", "bca"))
	part, err := mw.CreateFormFile("payment_proof", "bukti.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var checkout struct {
		Transaction models.TransactionView `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkout))
	trxID := checkout.Transaction.ID
	assert.Contains(t, trxID, "TRX-")
	assert.Equal(t, models.StatusPending, checkout.Transaction.Status)
	assert.Equal(t, "Bank BCA", checkout.Transaction.PaymentMethod)
	assert.Equal(t, int64(150000), checkout.Transaction.Price)
	require.NotNil(t, checkout.Transaction.PaymentProof)

	// the draft was consumed
	w = doJSON(http.MethodGet, "/api/bookings/draft", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// history shows the new transaction
	w = doJSON(http.MethodGet, "/api/transactions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), trxID)

	// admin confirms the payment
	w = doJSON(http.MethodPost, "/api/admin/login", "", models.AdminLoginRequest{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var adminAuth models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adminAuth))
	adminToken := adminAuth.Token

	// the user must not reach admin routes
	w = doJSON(http.MethodGet, "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(http.MethodPatch, "/api/admin/transactions/"+trxID+"/status", adminToken,
		models.UpdateStatusRequest{Status: models.StatusSuccess})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// terminal states are immutable
	w = doJSON(http.MethodPatch, "/api/admin/transactions/"+trxID+"/status", adminToken,
		models.UpdateStatusRequest{Status: models.StatusFailed})
	assert.Equal(t, http.StatusConflict, w.Code)

	// a same-value transition is an accepted no-op
	w = doJSON(http.MethodPatch, "/api/admin/transactions/"+trxID+"/status", adminToken,
		models.UpdateStatusRequest{Status: models.StatusSuccess})
	assert.Equal(t, http.StatusOK, w.Code)

	// admin search matches literal substrings
	w = doJSON(http.MethodGet, "/api/admin/transactions?search="+trxID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), trxID)

	// LIKE metacharacters in the search term are literals, not wildcards
	w = doJSON(http.MethodGet, "/api/admin/transactions?search=%25%25", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), trxID)

	// the admin detail view carries the customer join
	w = doJSON(http.MethodGet, "/api/admin/transactions/"+trxID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var adminDetail struct {
		Transaction models.AdminTransactionView `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adminDetail))
	assert.Equal(t, "Integration Tester", adminDetail.Transaction.CustomerName)
	assert.Equal(t, email, adminDetail.Transaction.CustomerEmail)

	// the user sees the confirmed badge
	w = doJSON(http.MethodGet, "/api/transactions/"+trxID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dikonfirmasi")

	// cancelling a confirmed transaction is rejected
	w = doJSON(http.MethodPatch, "/api/transactions/"+trxID+"/cancel", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// dashboard aggregates reflect the confirmed booking
	w = doJSON(http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard struct {
		Stats models.DashboardStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.GreaterOrEqual(t, dashboard.Stats.TotalRevenue, int64(150000))
	assert.GreaterOrEqual(t, dashboard.Stats.TotalBookings, 1)
	assert.GreaterOrEqual(t, dashboard.Stats.SuccessfulTransactions, 1)
}
