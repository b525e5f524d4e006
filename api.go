package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// newRouter wires the HTTP surface. All routes live under /api/v1.
func newRouter(h *Handler, env string) *gin.Engine {
	if env == "production" || env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: false,
	}))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		v1.GET("/catalog", h.GetCatalog)

		v1.POST("/recommendations", h.PostRecommendations)
		v1.POST("/recommendations/reports", h.PostReportJobs)
		v1.GET("/recommendations/reports/:jobId", h.GetReportJob)
		v1.POST("/recommendations/custom-path", h.PostCustomPath)

		v1.POST("/chat/sessions", h.PostChatSessions)
		v1.POST("/chat/sessions/:sessionId/messages", h.PostChatMessage)
		v1.GET("/chat/sessions/:sessionId/messages", h.GetChatHistory)
		v1.DELETE("/chat/sessions/:sessionId", h.DeleteChatSession)

		v1.POST("/quiz/generate", h.PostQuizGenerate)
		v1.POST("/quiz/answers", h.PostQuizAnswers)

		v1.POST("/calculators/emi", h.PostCalcEMI)
		v1.POST("/calculators/education-cost", h.PostCalcCost)

		v1.PUT("/users/profile", h.PutProfile)
		v1.GET("/users/:userId/profile", h.GetProfile)
		v1.POST("/users/saved-colleges", h.PostSavedColleges)
		v1.GET("/users/:userId/saved-colleges", h.GetSavedColleges)
		v1.POST("/users/saved-career-paths", h.PostSavedCareerPaths)
		v1.GET("/users/:userId/saved-career-paths", h.GetSavedCareerPaths)
	}

	return router
}
