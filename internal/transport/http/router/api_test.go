package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fittrack/internal/core/config"
	"fittrack/internal/domain"
	"fittrack/internal/fitness"
	"fittrack/internal/repo"
	"fittrack/internal/service"
	"fittrack/internal/transport/http/handler"
)

func newTestEngine(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Activity{}))

	log := zap.NewNop()
	users := repo.NewUserRepo(db)
	activities := repo.NewActivityRepo(db)
	userSvc := service.NewUserService(users, activities, log)
	activitySvc := service.NewActivityService(activities, users, fitness.DefaultCalculator(), nil, 0, log)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.StaticDir = staticDir
	cfg.CORS.Origins = []string{"*"}

	return NewAPIEngine(log, cfg,
		handler.NewUserHandler(userSvc, log),
		handler.NewActivityHandler(activitySvc, log),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t, "")
	rr := doJSON(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	r := newTestEngine(t, "")

	rr := doJSON(t, r, http.MethodPost, "/api/users",
		`{"name":"Ana Silva","email":"Ana@Example.com","age":29,"weight":65,"height":168}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created domain.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "ana@example.com", created.Email)

	rr = doJSON(t, r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []domain.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/%d", created.ID), `{"weight":80}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated domain.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, 80.0, *updated.Weight)
	assert.Equal(t, "Ana Silva", updated.Name)

	rr = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", created.ID), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rr.Body.String())
}

func TestUserValidationErrorBody(t *testing.T) {
	r := newTestEngine(t, "")

	rr := doJSON(t, r, http.MethodPost, "/api/users", `{"name":"x","email":"nope"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "invalid user data", body.Error)
	assert.Len(t, body.Details, 2)
}

func TestActivityEndpoints(t *testing.T) {
	r := newTestEngine(t, "")

	rr := doJSON(t, r, http.MethodPost, "/api/users",
		`{"name":"Bruno Costa","email":"bruno@example.com","weight":70}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var u domain.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))

	rr = doJSON(t, r, http.MethodPost, "/api/activities",
		fmt.Sprintf(`{"userId":%d,"type":"cycling","duration":60,"startTime":"2026-08-29T07:00:00Z","heartRate":140}`, u.ID))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var a domain.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &a))
	assert.InDelta(t, 20, a.Distance, 0.001)
	assert.InDelta(t, 480, a.CaloriesBurned, 0.001)
	require.NotNil(t, a.EndTime)

	rr = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/activities?type=cycling&userId=%d", u.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var acts []domain.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &acts))
	assert.Len(t, acts, 1)

	rr = doJSON(t, r, http.MethodGet, "/api/activities/stats/overview", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var o domain.Overview
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &o))
	assert.Equal(t, int64(1), o.Totals.TotalActivities)
	assert.Equal(t, int64(1), o.Totals.ActiveUsers)

	rr = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d/stats", u.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var stats service.UserStatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Stats.TotalActivities)
	assert.Len(t, stats.RecentActivities, 1)

	// Unknown owner is a 404, not a validation failure.
	rr = doJSON(t, r, http.MethodPost, "/api/activities",
		`{"userId":99999,"type":"running","duration":30,"startTime":"2026-08-29T07:00:00Z"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rr.Body.String())
}

func TestMalformedJSONBody(t *testing.T) {
	r := newTestEngine(t, "")
	rr := doJSON(t, r, http.MethodPost, "/api/users", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestUnknownAPIRouteIsJSON404(t *testing.T) {
	r := newTestEngine(t, "")
	rr := doJSON(t, r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"endpoint not found"}`, rr.Body.String())
}

func TestRequestIDEchoedAndGenerated(t *testing.T) {
	r := newTestEngine(t, "")

	rr := doJSON(t, r, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestMetricsExposeServiceSeries(t *testing.T) {
	r := newTestEngine(t, "")
	doJSON(t, r, http.MethodGet, "/health", "")

	rr := doJSON(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "fittrack_http_requests_total")
	assert.Contains(t, rr.Body.String(), "fittrack_http_request_duration_seconds")
}

func TestStaticFallbackServesIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dash</html>"), 0o644))

	r := newTestEngine(t, dir)

	rr := doJSON(t, r, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "dash")

	rr = doJSON(t, r, http.MethodGet, "/index.html", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
