package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-jobportal-api/internal/core/cache"
	"go-jobportal-api/internal/core/identity"
	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/transport/http/ez"
	mdw "go-jobportal-api/internal/transport/http/middleware"
)

// Deps carries everything the API surface needs. JobCache is optional; nil
// means every job-detail read goes straight to the store.
type Deps struct {
	Users domain.UserRepository
	Jobs  domain.JobRepository
	Apps  domain.ApplicationRepository

	Ident identity.Resolver
	Pass  identity.PasswordScheme

	JobCache    *cache.Cache
	JobCacheTTL time.Duration

	CORSOrigins []string // empty = allow all
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		corsMiddleware(d.CORSOrigins),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 前缀
	api := r.Group("/api")

	mountAuthActions(api, d)
	mountUserActions(api, d)
	mountJobActions(api, d)
	mountApplicationActions(api, d)
	mountDashboardActions(api, d)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		// cross-origin access unrestricted by default
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}

// actorErr maps identity resolution failures onto the HTTP contract: a
// missing trusted parameter is a plain validation error, a bad token is 401.
func actorErr(err error, param string) error {
	if errors.Is(err, identity.ErrMissingActor) {
		return ez.BadRequest(param + " is required")
	}
	return ez.Unauthorized("Invalid credentials")
}
