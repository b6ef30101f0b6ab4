package routes

import (
	"github.com/gvnna/bookworms/handlers/groups"
	"github.com/gvnna/bookworms/middleware"

	"github.com/gin-gonic/gin"
)

func GroupsRoutes(r *gin.Engine) {
	r.GET("/groups/:id", groups.GetGroupByID)

	groupsRoutes := r.Group("/groups")
	groupsRoutes.Use(middleware.JWTAuth())
	{
		groupsRoutes.POST("", groups.CreateGroup)
	}
}
