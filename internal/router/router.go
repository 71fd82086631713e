package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ayushqc/college-info-api/internal/config"
	"github.com/ayushqc/college-info-api/internal/handler"
	"github.com/ayushqc/college-info-api/internal/middleware"
	"github.com/ayushqc/college-info-api/internal/response"
	"github.com/ayushqc/college-info-api/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	College  *handler.CollegeHandler
	Admin    *handler.AdminHandler
	Timeline *handler.TimelineHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Write and admin operations sit behind the Basic-auth credential resolver
// plus a per-IP rate limiter; reads are public.
func SetupRouter(authService *service.AuthService, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		// Credentials cannot be combined with a wildcard origin.
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status":  "ok",
			"message": "College API is running",
		})
	})

	api := router.Group("/api/v1")

	// ─── Colleges (Public Reads) ───────────────────────────────────────
	colleges := api.Group("/colleges")
	{
		colleges.GET("", handlers.College.List)
		colleges.GET("/:id", handlers.College.Get)
	}

	// ─── Colleges (Admin Writes, Rate Limited) ─────────────────────────
	adminLimiter := middleware.NewRateLimiter(30, time.Minute)
	adminColleges := api.Group("/colleges")
	adminColleges.Use(adminLimiter.Middleware(), middleware.RequireAdmin(authService))
	{
		adminColleges.POST("", handlers.College.Create)
		adminColleges.PUT("/:id", handlers.College.Update)
		adminColleges.DELETE("/:id", handlers.College.Delete)
		adminColleges.GET("/export", handlers.College.Export)
		adminColleges.GET("/admin-info", handlers.Admin.Info)
		adminColleges.POST("/change-admin-credentials", handlers.Admin.ChangeCredentials)
	}

	// ─── Timeline ──────────────────────────────────────────────────────
	timeline := api.Group("/timeline")
	{
		timeline.GET("", handlers.Timeline.List)
		timeline.GET("/college/:collegeId", handlers.Timeline.ListByCollege)
		timeline.POST("", handlers.Timeline.Create)
	}

	return router
}
