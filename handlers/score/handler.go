package score

import (
	"errors"
	"net/http"

	"github.com/gvnna/bookworms/db"
	"github.com/gvnna/bookworms/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreUpdate struct {
	Score *int `json:"score" binding:"required"`
}

// @Summary Get the ranking of a group
// @Description Retrieve the group's users ordered by descending score with 1-based positions
// @Tags score
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} map[string]interface{} "data: ranking"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /score/ranking/{groupId} [get]
func GetRanking(c *gin.Context) {
	groupID := c.Param("groupId")

	var users []models.User
	if err := db.DB.Where("group_id = ?", groupID).
		Order("score DESC").Order("username ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar ranking: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": models.RankUsers(users)})
}

// @Summary Update a user's score
// @Description Set the score of a user
// @Tags score
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param score body ScoreUpdate true "New score"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Score atualizado com sucesso, data: user"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "message: Usuário não encontrado"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /score/{userId} [put]
func UpdateScore(c *gin.Context) {
	userID := c.Param("userId")

	var input ScoreUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar usuário: " + err.Error()})
		return
	}

	if err := db.DB.Model(&user).Update("score", *input.Score).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar score: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Score atualizado com sucesso",
		"data":    user,
	})
}
