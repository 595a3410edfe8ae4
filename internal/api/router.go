package api

import (
	"github.com/gagquiz/quizboard/internal/config"
	"github.com/gagquiz/quizboard/internal/pubsub"
	"github.com/gagquiz/quizboard/internal/quiz"
	"github.com/gagquiz/quizboard/internal/web"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the Gin engine. Quiz and admin endpoints
// share one engine; admin routes sit behind the bearer middleware.
func NewRouter(
	cfg *config.Config,
	scoring *quiz.Scoring,
	ranking *quiz.Ranking,
	broker *pubsub.Broker) *gin.Engine {

	r := gin.Default()

	r.Use(CSPMiddleware())
	r.Use(CORSMiddleware(cfg.CORS))

	h := NewHandler(cfg, scoring, ranking, broker)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/start", h.startQuiz)
		apiGroup.POST("/submit", h.submitResult)
		apiGroup.GET("/my-rank", h.getMyRank)
		apiGroup.GET("/check-user", h.checkUser)
		apiGroup.POST("/submit-extra", h.submitExtra)

		admin := apiGroup.Group("/admin")
		{
			admin.POST("/login", h.adminLogin)

			authed := admin.Group("")
			authed.Use(AdminAuthMiddleware(cfg.Admin))
			{
				authed.GET("/leaderboard", h.adminLeaderboard)
				authed.GET("/stats", h.adminStats)
				authed.DELETE("/result/:email", h.adminDeleteResult)
				authed.GET("/ws/leaderboard", h.handleLeaderboardWs)
			}
		}
	}

	web.RegisterPageHandlers(r, cfg.Storage.Logo)

	return r
}
