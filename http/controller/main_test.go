package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tnqbao/gau-watchlist-service/config"
	"github.com/tnqbao/gau-watchlist-service/infra"
	"github.com/tnqbao/gau-watchlist-service/repository/repositorytest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	ctrl   *Controller
	store  *repositorytest.Store
	engine *gin.Engine
}

func newTestServer(t *testing.T, mode string) *testServer {
	t.Helper()

	env := &config.EnvConfig{}
	env.Server.RoutePrefix = "/watch"
	env.Serializer.PlatformWatchList = mode

	store := repositorytest.NewStore()
	ctrl := NewController(
		&config.Config{EnvConfig: env},
		&infra.Infra{Logger: infra.NewLoggerClient(slog.NewTextHandler(io.Discard, nil), nil)},
		store.Repository(),
	)

	r := gin.New()
	r.GET("/healthz", ctrl.HealthCheck)
	g := r.Group("/watch")
	g.GET("/", ctrl.ListWatchList)
	g.POST("/", ctrl.CreateWatchList)
	g.GET("/:id/", ctrl.GetWatchListByID)
	g.PUT("/:id/", ctrl.UpdateWatchListByID)
	g.DELETE("/:id/", ctrl.DeleteWatchListByID)
	g.GET("/platform/", ctrl.ListStreamPlatforms)
	g.POST("/platform/", ctrl.CreateStreamPlatform)
	g.GET("/platform/:id/", ctrl.GetStreamPlatformByID)
	g.PUT("/platform/:id/", ctrl.UpdateStreamPlatformByID)
	g.DELETE("/platform/:id/", ctrl.DeleteStreamPlatformByID)
	g.GET("/review/", ctrl.ListReviews)
	g.POST("/review/", ctrl.CreateReview)
	g.GET("/review/:id", ctrl.GetReviewByID)
	g.PUT("/review/:id", ctrl.UpdateReviewByID)
	g.DELETE("/review/:id", ctrl.DeleteReviewByID)

	return &testServer{ctrl: ctrl, store: store, engine: r}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) createPlatform(t *testing.T, name string) uint {
	t.Helper()
	w := s.do(t, http.MethodPost, "/watch/platform/", gin.H{"name": name, "description": name + " streaming"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode[map[string]interface{}](t, w)["id"].(float64))
}

func (s *testServer) createMovie(t *testing.T, body gin.H) uint {
	t.Helper()
	w := s.do(t, http.MethodPost, "/watch/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode[map[string]interface{}](t, w)["id"].(float64))
}
