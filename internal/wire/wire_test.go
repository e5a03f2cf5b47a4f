package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "wire-test-secret"

func testApp(t *testing.T) *App {
	t.Helper()
	config := &utils.Config{
		App: utils.AppConfig{Name: "movie-catalog", CORSOrigins: []string{"*"}},
		JWT: utils.JWTConfig{Secret: testSecret, ExpiryHours: 1},
	}
	return Wiring(&repository.Repository{}, config, nil, nil, zap.NewNop())
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, _, err := utils.IssueToken(testSecret, uuid.New(), role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouteGuards(t *testing.T) {
	app := testApp(t)
	movieID := uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/does-not-exist", "", http.StatusNotFound},
		{"profile needs token", http.MethodGet, "/api/auth/profile", "", http.StatusUnauthorized},
		{"review needs token", http.MethodPost, "/api/reviews/" + movieID, "", http.StatusUnauthorized},
		{"watchlist needs token", http.MethodGet, "/api/watchlist", "", http.StatusUnauthorized},
		{"create movie is admin only", http.MethodPost, "/api/movies", bearer(t, "user"), http.StatusForbidden},
		{"box office is admin only", http.MethodPut, "/api/movies/" + movieID + "/box-office", bearer(t, "user"), http.StatusForbidden},
		{"statistics is admin only", http.MethodGet, "/api/admin/statistics", bearer(t, "user"), http.StatusForbidden},
		{"moderation is admin only", http.MethodDelete, "/api/admin/movies/" + movieID + "/reviews/" + uuid.NewString(), bearer(t, "user"), http.StatusForbidden},
		{"discussion delete is admin only", http.MethodDelete, "/api/discussions/" + uuid.NewString(), bearer(t, "user"), http.StatusForbidden},
		{"notify upcoming is admin only", http.MethodPost, "/api/movies/upcoming/notify", bearer(t, "user"), http.StatusForbidden},
		{"malformed movie id", http.MethodGet, "/api/movies/not-a-uuid", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			if tt.auth != "" {
				request.Header.Set("Authorization", tt.auth)
			}
			recorder := httptest.NewRecorder()
			app.Router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
