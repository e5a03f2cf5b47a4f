package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	log := zap.NewNop()
	userID := uuid.New()

	t.Run("missing header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		Authenticate(testSecret, log)(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Token abc")
		Authenticate(testSecret, log)(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := utils.IssueToken("other-secret", userID, "user", time.Hour)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		Authenticate(testSecret, log)(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		token, _, err := utils.IssueToken(testSecret, userID, "admin", time.Hour)
		require.NoError(t, err)

		var gotID uuid.UUID
		var gotRole string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = utils.GetUserIDFromContext(r.Context())
			gotRole, _ = utils.GetRoleFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		Authenticate(testSecret, log)(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, "admin", gotRole)
	})
}

func TestAdmin(t *testing.T) {
	log := zap.NewNop()

	tests := []struct {
		name string
		role string
		anon bool
		want int
	}{
		{name: "admin", role: "admin", want: http.StatusOK},
		{name: "regular user", role: "user", want: http.StatusForbidden},
		{name: "anonymous", anon: true, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if !tt.anon {
				request = request.WithContext(utils.SetUserContext(request.Context(), uuid.New(), tt.role))
			}
			Admin(log)(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

func TestRecover(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	Recover(zap.NewNop())(panicky).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
	assert.NotContains(t, recorder.Body.String(), "boom")
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/movies/{id}", okHandler)

	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(http.MethodGet, "/movies/{id}", "200"))

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/movies/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(http.MethodGet, "/movies/{id}", "200"))
	assert.Equal(t, before+1, after)
}
