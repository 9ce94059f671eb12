package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"futsalbook/internal/cache"
	"futsalbook/internal/config"
	"futsalbook/internal/middleware"
	"futsalbook/internal/models"
	"futsalbook/internal/service"
	"futsalbook/internal/venues"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires the handlers against a real session store and the
// in-memory venue catalog. Nothing here touches Postgres; routes that
// need it are covered by the integration tests.
type testEnv struct {
	router   *gin.Engine
	sessions *cache.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	sessions, err := cache.NewSessionStore(cache.Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })

	catalog := venues.NewCatalog()
	upload := config.UploadConfig{MaxProofBytes: 5 * 1024 * 1024}

	services := &service.Services{
		Slots:    service.NewSlotService(),
		Bookings: service.NewBookingService(upload, nil, catalog, sessions, nil),
	}
	h := NewHandlers(services, catalog)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/venues", h.ListVenues)
	api.GET("/venues/:id", h.GetVenue)
	api.GET("/slots", h.ListSlots)

	authd := api.Group("")
	authd.Use(middleware.SessionAuth(sessions))
	authd.PUT("/session/venue", h.SelectVenue)
	authd.POST("/bookings/draft", h.CreateDraft)
	authd.GET("/bookings/draft", h.GetDraft)

	return &testEnv{router: router, sessions: sessions}
}

func (e *testEnv) userToken(t *testing.T) string {
	t.Helper()

	token, err := e.sessions.Create(context.Background(), &models.Session{
		UserID: 42,
		Role:   models.RoleUser,
	})
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestListVenues(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/venues", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Venues []models.Venue `json:"venues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Venues, 6)
}

func TestGetVenueNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/venues/venue-99", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSlots(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/slots?date=2026-09-02", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date  string        `json:"date"`
		Slots []models.Slot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-02", resp.Date)
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, int64(150000), resp.Slots[14].Price)
}

func TestListSlotsMissingDate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/slots", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSlotsInvalidDate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/slots?date=tomorrow", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraftRequiresSelectedVenue(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t)

	w := env.do(http.MethodPost, "/api/bookings/draft", token,
		`{"date":"2026-09-02","time":"19:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingDraftFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t)

	w := env.do(http.MethodPut, "/api/session/venue", token, `{"venue_id":"venue-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/bookings/draft", token,
		`{"date":"2026-09-02","time":"19:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Draft        models.DraftBooking `json:"draft"`
		PriceDisplay string              `json:"price_display"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "19:00", created.Draft.Time)
	assert.Equal(t, int64(150000), created.Draft.Price)
	assert.Equal(t, "venue-1", created.Draft.Venue.ID)
	assert.Equal(t, "Rp 150.000", created.PriceDisplay)

	// the draft survives in the session
	w = env.do(http.MethodGet, "/api/bookings/draft", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	// a new selection overwrites it
	w = env.do(http.MethodPost, "/api/bookings/draft", token,
		`{"date":"2026-09-02","time":"10:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(120000), created.Draft.Price)
}

func TestDraftRejectsOffGridTime(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t)

	w := env.do(http.MethodPut, "/api/session/venue", token, `{"venue_id":"venue-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, body := range []string{
		`{"date":"2026-09-02","time":"08:00"}`,
		`{"date":"2026-09-02","time":"19:30"}`,
		`{"date":"09/02/2026","time":"19:00"}`,
	} {
		w = env.do(http.MethodPost, "/api/bookings/draft", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func proofFileHeader(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	part, err := mw.CreateFormFile("payment_proof", "bukti.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, fileHeader, err := req.FormFile("payment_proof")
	require.NoError(t, err)
	return fileHeader
}

func TestReadProofSkipsOversizedBody(t *testing.T) {
	h := NewHandlers(&service.Services{
		Bookings: service.NewBookingService(
			config.UploadConfig{MaxProofBytes: 8}, nil, nil, nil, nil),
	}, nil)

	upload, err := h.readProof(proofFileHeader(t, make([]byte, 32)))
	require.NoError(t, err)

	// the declared size is kept for the limit check downstream, but the
	// body is never buffered
	assert.Equal(t, int64(32), upload.Size)
	assert.Empty(t, upload.Data)
}

func TestReadProofBuffersWithinLimit(t *testing.T) {
	h := NewHandlers(&service.Services{
		Bookings: service.NewBookingService(
			config.UploadConfig{MaxProofBytes: 64}, nil, nil, nil, nil),
	}, nil)

	content := []byte{0x89, 0x50, 0x4e, 0x47}
	upload, err := h.readProof(proofFileHeader(t, content))
	require.NoError(t, err)

	assert.Equal(t, int64(len(content)), upload.Size)
	assert.Equal(t, content, upload.Data)
	assert.Equal(t, "bukti.png", upload.FileName)
}

func TestSelectUnknownVenue(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t)

	w := env.do(http.MethodPut, "/api/session/venue", token, `{"venue_id":"venue-99"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
