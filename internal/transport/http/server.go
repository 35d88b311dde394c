package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "solutiontech-chat/internal/app"
	"solutiontech-chat/internal/bootstrap"
	"solutiontech-chat/internal/bot"
	"solutiontech-chat/internal/repository"
	"solutiontech-chat/internal/transport/http/handler"
	"solutiontech-chat/internal/upload"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(app.Config.App.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = app.Config.App.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)
	router.GET("/metrics", app.Metrics.Handler())
	router.Static("/uploads", app.FileStore.BasePath())

	sessionRepo := repository.NewSessionRepository()
	messageRepo := repository.NewMessageRepository()
	searchIndex := repository.NewSearchIndex(sessionRepo, messageRepo)
	chatService := appsvc.NewChatService(
		sessionRepo,
		messageRepo,
		searchIndex,
		bot.NewResponder(nil),
		upload.NewProcessor(app.FileStore),
		app.Metrics,
	)
	chatHandler := handler.NewChatHandler(chatService)

	v1 := router.Group("/api/v1")
	chatGroup := v1.Group("/chat")
	chatGroup.GET("/sessions", chatHandler.ListSessions)
	chatGroup.POST("/sessions", chatHandler.CreateSession)
	chatGroup.GET("/sessions/:id/messages", chatHandler.ListMessages)
	chatGroup.POST("/sessions/:id/messages", chatHandler.SubmitMessage)
	chatGroup.GET("/search", chatHandler.SearchMessages)

	return router
}
