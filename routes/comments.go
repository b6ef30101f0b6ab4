package routes

import (
	"github.com/gvnna/bookworms/handlers/comments"
	"github.com/gvnna/bookworms/middleware"

	"github.com/gin-gonic/gin"
)

func CommentsRoutes(r *gin.Engine) {
	// Rotas públicas
	r.GET("/comments/:commentId", comments.GetComment)
	r.GET("/comments/post/:postId", comments.GetCommentsByPost)
	r.GET("/comments/post/:postId/sse", comments.HandleSSE)

	// Rotas protegidas
	commentsRoutes := r.Group("/comments")
	commentsRoutes.Use(middleware.JWTAuth())
	{
		commentsRoutes.POST("", comments.CreateComment)
		commentsRoutes.PUT("/:commentId", comments.UpdateComment)
		commentsRoutes.DELETE("/:commentId", comments.DeleteComment)
	}
}
