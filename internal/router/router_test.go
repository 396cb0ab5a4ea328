package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oclettings/oc-lettings-site/config"
	"github.com/oclettings/oc-lettings-site/internal/app/controller"
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	"github.com/oclettings/oc-lettings-site/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouterTest(t *testing.T) http.Handler {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	lettingRepo := repository.NewLettingRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	profileRepo := repository.NewProfileRepository(testDB)
	adminService := service.NewAdminService(repository.NewAddressRepository(testDB), lettingRepo, userRepo, profileRepo)

	cfg := &config.Config{}
	cfg.Server.GinMode = "test"

	return NewRouter(
		controller.NewHomeController(),
		controller.NewLettingController(service.NewLettingService(lettingRepo)),
		controller.NewProfileController(service.NewProfileService(profileRepo, userRepo)),
		controller.NewAdminController(adminService),
		cfg,
	).Setup()
}

func TestRouter_Health(t *testing.T) {
	r := setupRouterTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRouter_Pages(t *testing.T) {
	r := setupRouterTest(t)

	tests := []struct {
		path   string
		status int
	}{
		{path: "/", status: http.StatusOK},
		{path: "/lettings/", status: http.StatusOK},
		{path: "/profiles/", status: http.StatusOK},
		{path: "/admin/", status: http.StatusOK},
		{path: "/lettings/1/", status: http.StatusNotFound},
		{path: "/sentry-debug/", status: http.StatusInternalServerError},
		{path: "/does-not-exist/", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_RedirectsToTrailingSlash(t *testing.T) {
	r := setupRouterTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lettings", nil))

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/lettings/", w.Header().Get("Location"))
}
