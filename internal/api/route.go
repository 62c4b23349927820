package api

import (
	"Folio/internal/api/config"
	"Folio/internal/api/middleware"
	"Folio/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.CorsOrigins))
	logger.SetupGin(r, cfg.Logstash)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimit))
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		documentGroup := apiGroup.Group("/documents")
		{
			documentGroup.POST("", group.DocumentHandler.CreateDocument)
			documentGroup.GET("/search", group.DocumentHandler.SearchDocuments)
			documentGroup.GET("/:document_id", group.DocumentHandler.GetDocument)
		}

		apiGroup.GET("/tags", group.DocumentHandler.ListTags)

		searchGroup := apiGroup.Group("/search")
		{
			searchGroup.GET("/hot", group.HotKeywordHandler.GetHotKeywords)
		}
	}

	return r
}
