package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"fittrack/internal/core/config"
	"fittrack/internal/transport/http/handler"
	mdw "fittrack/internal/transport/http/middleware"
)

// NewAPIEngine wires the middleware chain, the REST routes, and the static
// dashboard fallback.
func NewAPIEngine(l *zap.Logger, cfg *config.Config, users *handler.UserHandler, activities *handler.ActivityHandler) *gin.Engine {
	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		corsMiddleware(cfg.CORS),
	)
	if cfg.RateLimit.PerMin > 0 {
		r.Use(mdw.RateLimitPerIP(rate.Limit(float64(cfg.RateLimit.PerMin))/60, cfg.RateLimit.Burst))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	users.Mount(api.Group("/users"))
	activities.Mount(api.Group("/activities"))

	mountStatic(r, cfg.App.StaticDir)

	return r
}

func corsMiddleware(c config.CORS) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(c.Origins) == 0 || (len(c.Origins) == 1 && c.Origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.Origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// mountStatic serves the dashboard with an index fallback for client-side
// routes; unknown /api paths stay JSON 404s.
func mountStatic(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
			return
		}
		if dir != "" {
			full := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
			if st, err := os.Stat(full); err == nil && !st.IsDir() {
				c.File(full)
				return
			}
			index := filepath.Join(dir, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
