package comments

import (
	"errors"
	"net/http"

	"github.com/gvnna/bookworms/db"
	"github.com/gvnna/bookworms/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// sendValidationError traduz o código da regra violada para a mensagem
// localizada. O status é decidido pelo código, nunca pela string.
func sendValidationError(c *gin.Context, verr *models.CommentValidationError) {
	switch verr.Code {
	case models.CommentErrEmpty:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comentário não pode ser vazio"})
	case models.CommentErrTooLong:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comentário deve ter no máximo 150 caracteres"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
	}
}

// @Summary Create a new comment
// @Description Create a comment linked to an existing post and author
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body models.CommentCreate true "Comment information"
// @Success 201 {object} map[string]interface{} "message: Comentário criado com sucesso!, data: comment"
// @Failure 400 {object} map[string]string "message: validation error"
// @Failure 500 {object} map[string]string "message: Erro ao criar comentário"
// @Router /comments [post]
func CreateComment(c *gin.Context) {
	var input models.CommentCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if verr := input.Validate(); verr != nil {
		sendValidationError(c, verr)
		return
	}

	comment := models.Comment{
		PostID:   input.PostID,
		AuthorID: input.AuthorID,
		Text:     input.Text,
	}

	// Sem pré-checagem de post/autor: uma FK inválida estoura aqui.
	if err := db.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro ao criar comentário",
			"error":   err.Error(),
		})
		return
	}

	broadcastComment(comment)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comentário criado com sucesso!",
		"data":    comment,
	})
}

// @Summary Get a comment by ID
// @Description Retrieve a single comment by its ID
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} map[string]string "message: Comentário não encontrado"
// @Failure 500 {object} map[string]string "message: Erro interno no servidor"
// @Router /comments/{commentId} [get]
func GetComment(c *gin.Context) {
	commentID := c.Param("commentId")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comentário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro interno no servidor",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// @Summary Update a comment
// @Description Update the text of an existing comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path string true "Comment ID"
// @Param comment body models.CommentUpdate true "New comment text"
// @Success 200 {object} map[string]interface{} "message: Comentário atualizado com sucesso, data: comment"
// @Failure 400 {object} map[string]string "message: validation error"
// @Failure 404 {object} map[string]string "message: Comentário não encontrado"
// @Failure 500 {object} map[string]string "message: Erro ao atualizar comentário"
// @Router /comments/{commentId} [put]
func UpdateComment(c *gin.Context) {
	commentID := c.Param("commentId")

	var input models.CommentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if verr := input.Validate(); verr != nil {
		sendValidationError(c, verr)
		return
	}

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comentário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro ao atualizar comentário",
			"error":   err.Error(),
		})
		return
	}

	// Somente o texto é mutável.
	if err := db.DB.Model(&comment).Update("text", input.Text).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro ao atualizar comentário",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comentário atualizado com sucesso",
		"data":    comment,
	})
}

// @Summary Delete a comment
// @Description Delete a comment by its ID
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} map[string]interface{} "message: Comentário deletado com sucesso, data: comment"
// @Failure 404 {object} map[string]string "message: Comentário não encontrado"
// @Failure 500 {object} map[string]string "message: Erro ao deletar comentário"
// @Router /comments/{commentId} [delete]
func DeleteComment(c *gin.Context) {
	commentID := c.Param("commentId")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comentário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro ao deletar comentário",
			"error":   err.Error(),
		})
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro ao deletar comentário",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comentário deletado com sucesso",
		"data":    comment,
	})
}

// @Summary Get all comments of a post
// @Description Retrieve the comments of a post in chronological order
// @Tags comments
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} map[string]interface{} "message: Comentários encontrados, data: comments"
// @Failure 404 {object} map[string]string "message: Nenhum comentário encontrado"
// @Failure 500 {object} map[string]string "message: Erro ao buscar comentários"
// @Router /comments/post/{postId} [get]
func GetCommentsByPost(c *gin.Context) {
	postID := c.Param("postId")

	var comments []models.Comment
	if err := db.DB.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro ao buscar comentários",
			"error":   err.Error(),
		})
		return
	}

	if len(comments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Nenhum comentário encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comentários encontrados",
		"data":    comments,
	})
}
