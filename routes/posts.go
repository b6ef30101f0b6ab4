package routes

import (
	"github.com/gvnna/bookworms/handlers/posts"
	"github.com/gvnna/bookworms/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	// Rotas públicas
	r.GET("/posts", posts.GetAllPosts)
	r.GET("/posts/:id", posts.GetPostByID)
	r.GET("/posts/:id/details", posts.GetPostDetails)

	// Rotas protegidas
	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.POST("", posts.CreatePost)
		postsRoutes.PUT("/:id", posts.UpdatePost)
		postsRoutes.DELETE("/:id", posts.DeletePost)
	}
}
