package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"futsalbook/internal/cache"
	"futsalbook/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *cache.SessionStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := cache.NewSessionStore(cache.Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	router := gin.New()
	router.Use(SessionAuth(store))
	router.GET("/whoami", func(c *gin.Context) {
		sess := SessionFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": sess.UserID, "role": sess.Role})
	})

	admin := router.Group("/admin", AdminOnly())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, store
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAuthMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthUnknownToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "not-a-session")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthValidToken(t *testing.T) {
	router, store := newTestRouter(t)

	token, err := store.Create(context.Background(), &models.Session{
		UserID: 42,
		Role:   models.RoleUser,
	})
	require.NoError(t, err)

	w := doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestSessionAuthRejectsNonBearerHeader(t *testing.T) {
	router, store := newTestRouter(t)

	token, err := store.Create(context.Background(), &models.Session{UserID: 1, Role: models.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	userToken, err := store.Create(ctx, &models.Session{UserID: 42, Role: models.RoleUser})
	require.NoError(t, err)

	adminToken, err := store.Create(ctx, &models.Session{
		UserID: models.AdminSentinelID,
		Role:   models.RoleAdmin,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("Bearer abc "))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Basic abc"))
}
