package routes

import (
	"github.com/gvnna/bookworms/handlers/score"
	"github.com/gvnna/bookworms/middleware"

	"github.com/gin-gonic/gin"
)

func ScoreRoutes(r *gin.Engine) {
	r.GET("/score/ranking/:groupId", score.GetRanking)

	scoreRoutes := r.Group("/score")
	scoreRoutes.Use(middleware.JWTAuth())
	{
		scoreRoutes.PUT("/:userId", score.UpdateScore)
	}
}
