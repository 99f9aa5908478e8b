package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"social-listener/cmd/api/handlers"
	"social-listener/cmd/api/middleware"
	"social-listener/cmd/api/services"
	_ "social-listener/docs"
)

// Deps are the request-scoped services wired once at process start.
type Deps struct {
	Auth      *services.AuthService
	Search    *services.SearchService
	Filter    *services.FilterService
	Dashboard *services.DashboardService
	Keywords  *services.KeywordService
	Export    *services.ExportService
	Summarize *services.SummarizeService
	Health    handlers.HealthStatus
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", handlers.HealthHandler(deps.Health))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		api.POST("/register", handlers.RegisterHandler(deps.Auth))
		api.POST("/login", handlers.LoginHandler(deps.Auth))
		api.GET("/me", handlers.MeHandler(deps.Auth))

		api.POST("/search-posts", handlers.SearchPostsHandler(deps.Auth, deps.Search))
		api.GET("/search-history", handlers.SearchHistoryHandler(deps.Auth, deps.Search))
		api.POST("/filter-posts", handlers.FilterPostsHandler(deps.Auth, deps.Filter))

		api.GET("/dashboard", handlers.DashboardHandler(deps.Auth, deps.Dashboard))

		api.POST("/save-keyword", handlers.SaveKeywordHandler(deps.Auth, deps.Keywords))
		api.GET("/saved-keywords", handlers.ListKeywordsHandler(deps.Auth, deps.Keywords))
		api.DELETE("/saved-keywords/:id", handlers.DeleteKeywordHandler(deps.Auth, deps.Keywords))

		api.GET("/export/csv", handlers.ExportCSVHandler(deps.Auth, deps.Export))
		api.POST("/summarize", handlers.SummarizeHandler(deps.Auth, deps.Summarize))
	}

	return r
}
