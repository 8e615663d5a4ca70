package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"memberhub/middleware"
	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

func newAuthFixture() (*services.MockAuthService, *store.SessionRegistry, *AuthController) {
	auth := new(services.MockAuthService)
	registry := store.NewSessionRegistry()
	return auth, registry, NewAuthController(auth, registry)
}

func TestPerformLogin_Success(t *testing.T) {
	auth, registry, controller := newAuthFixture()
	router := setupTestRouter(t)
	router.POST("/login", controller.PerformLogin)

	auth.On("Login", models.Credentials{Username: "admin", Password: "secret"}).
		Return(models.User{ID: "u1", Username: "admin", Name: "Ana Admin"}, "connect.sid=xyz789", nil)

	w := postForm(router, "/login", url.Values{
		"username": {"admin"},
		"password": {"secret"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	auth.AssertExpectations(t)

	// the registry must hold exactly one signed-in session
	found := false
	registry.Range(func(_ string, state *store.SessionState) {
		snap := state.Snapshot()
		require.NotNil(t, snap.User)
		assert.Equal(t, "admin", snap.User.Username)
		assert.True(t, snap.Initialized)
		found = true
	})
	assert.True(t, found)
}

func TestPerformLogin_RejectedCredentials(t *testing.T) {
	auth, registry, controller := newAuthFixture()
	router := setupTestRouter(t)
	router.POST("/login", controller.PerformLogin)

	auth.On("Login", models.Credentials{Username: "admin", Password: "wrong"}).
		Return(models.User{}, "", errors.New("Invalid credentials"))

	w := postForm(router, "/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")

	registry.Range(func(_ string, state *store.SessionState) {
		snap := state.Snapshot()
		assert.Nil(t, snap.User)
		assert.False(t, snap.Loading)
		assert.NotEmpty(t, snap.Error)
	})
}

func TestPerformLogin_MissingFields(t *testing.T) {
	auth, _, controller := newAuthFixture()
	router := setupTestRouter(t)
	router.POST("/login", controller.PerformLogin)

	w := postForm(router, "/login", url.Values{"username": {"admin"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all fields.")
	auth.AssertNotCalled(t, "Login", mock.Anything)
}

func TestShowLoginPage_SignedInSkipsToDashboard(t *testing.T) {
	_, registry, controller := newAuthFixture()
	router := setupTestRouter(t)
	router.GET("/login", controller.ShowLoginPage)

	registry.Get("sid-1").LoginSuccess(models.User{ID: "u1", Username: "admin"})
	cookie := setSession(router, "/seed", map[string]interface{}{
		middleware.SessionKeySID: "sid-1",
	})
	require.NotNil(t, cookie)

	req, _ := http.NewRequest("GET", "/login", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestLogout_ClearsUpstreamAndLocalState(t *testing.T) {
	auth, registry, controller := newAuthFixture()
	router := setupTestRouter(t)
	router.GET("/logout", controller.Logout)

	registry.Get("sid-1").LoginSuccess(models.User{Username: "admin"})
	auth.On("Logout", "connect.sid=xyz789").Return(nil)

	cookie := setSession(router, "/seed", map[string]interface{}{
		middleware.SessionKeySID:      "sid-1",
		middleware.SessionKeyUpstream: "connect.sid=xyz789",
	})
	require.NotNil(t, cookie)

	req, _ := http.NewRequest("GET", "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	auth.AssertExpectations(t)

	// the registry entry is dropped entirely
	count := 0
	registry.Range(func(string, *store.SessionState) { count++ })
	assert.Zero(t, count)
}
