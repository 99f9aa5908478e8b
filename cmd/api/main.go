package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"social-listener/cmd/api/auth"
	"social-listener/cmd/api/handlers"
	"social-listener/cmd/api/router"
	"social-listener/cmd/api/services"
	"social-listener/config"
	"social-listener/db"
	"social-listener/internal/logger"
	"social-listener/reddit"
	"social-listener/repositories"
	"social-listener/summarizer"
)

// @title           Reddit Social Listener API
// @version         1.0
// @description     Keyword-based social listening over Reddit with sentiment analytics
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	userRepo := repositories.NewUserRepository(db.Database())
	postRepo := repositories.NewPostRepository(db.Database())
	searchRepo := repositories.NewSearchRepository(db.Database())
	keywordRepo := repositories.NewKeywordRepository(db.Database())

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	// Optional collaborators degrade to explicit service errors when their
	// credentials are missing.
	redditClient, err := reddit.NewClient(cfg.RedditClientID, cfg.RedditClientSec, cfg.Reddit.UserAgent)
	if err != nil {
		logger.Log.Warnf("reddit client disabled: %v", err)
		redditClient = nil
	}
	gemini, err := summarizer.New(cfg.GeminiApiKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Warnf("summarizer disabled: %v", err)
		gemini = nil
	}

	r := router.New(router.Deps{
		Auth:      services.NewAuthService(userRepo, jwtManager),
		Search:    services.NewSearchService(redditClient, postRepo, searchRepo, cfg.Search),
		Filter:    services.NewFilterService(),
		Dashboard: services.NewDashboardService(postRepo, searchRepo, cfg.Search.TrendSampleLimit),
		Keywords:  services.NewKeywordService(keywordRepo),
		Export:    services.NewExportService(postRepo),
		Summarize: services.NewSummarizeService(gemini),
		Health: handlers.HealthStatus{
			RedditConfigured: redditClient != nil,
			GeminiConfigured: gemini != nil,
		},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	handler := cors.AllowAll().Handler(r)
	if err := http.ListenAndServe(":"+port, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
