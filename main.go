package main

import (
	"log"
	"os"

	"github.com/gvnna/bookworms/db"
	_ "github.com/gvnna/bookworms/docs"
	"github.com/gvnna/bookworms/routes"

	"github.com/gin-gonic/gin"
)

// @title API Bookworms
// @version 1.0
// @description API do grupo de leitura: posts, comentários, score e ranking
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Informe o JWT com o prefixo Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erro ao iniciar o servidor:", err)
	}
}
