package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"qa-platform/internal/platform/logger"
	"qa-platform/internal/question"
)

type RouterConfig struct {
	Log          *logger.Logger
	AllowOrigins []string
	// TracingService enables otelgin spans under this service name when set.
	TracingService string
}

func NewRouter(bank *question.Bank, cfg RouterConfig) *gin.Engine {
	api := NewAPI(bank, cfg.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(RequestID())
	r.Use(RequestLogger(cfg.Log))
	r.Use(SecurityHeaders())
	r.Use(CORS(cfg.AllowOrigins))

	r.GET("/health", api.HandleHealth)

	group := r.Group("/api")
	{
		group.GET("/questions", api.HandleQuestions)
		group.GET("/questions/:id", api.HandleQuestion)
		group.GET("/search", api.HandleSearch)
		group.GET("/categories", api.HandleCategories)
		group.GET("/category/:category", api.HandleCategory)
		group.GET("/difficulties", api.HandleDifficulties)
		group.GET("/difficulty/:level", api.HandleDifficulty)
		group.GET("/filter", api.HandleFilter)
		group.GET("/random", api.HandleRandom)
		group.GET("/stats", api.HandleStats)
	}

	r.NoRoute(api.HandleNoRoute)

	return r
}
