package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Miraines/StudyPlanner/backend/internal/adapters/transport/http/middleware"
	"github.com/Miraines/StudyPlanner/backend/internal/infra/config"
)

func NewRouter(h *Handler, cfg *config.Config, log *zap.Logger, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.NewMetrics(reg).Handler())

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{
				"Origin", "Content-Type", "Accept",
				"Authorization",
				"X-Requested-With",
			},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: cfg.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}))
	} else {
		log.Warn("ALLOWED_ORIGINS is empty, CORS disabled")
	}

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	protected := api.Group("", middleware.Bearer(h.auth))
	protected.GET("/profile", h.Profile)
	protected.GET("/subjects", h.Subjects)
	protected.GET("/progress", h.Progress)
	protected.GET("/tasks", h.Tasks)
	protected.GET("/study-sessions", h.Sessions)

	return router
}
