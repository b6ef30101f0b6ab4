package routes

import (
	"github.com/gvnna/bookworms/handlers/users"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	r.POST("/users", users.CreateUser)
	r.GET("/users/:id", users.GetUserByID)
}
