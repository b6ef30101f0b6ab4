package posts

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gvnna/bookworms/db"
	"github.com/gvnna/bookworms/models"
	"github.com/gvnna/bookworms/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CommentAuthor é o autor embutido em cada comentário da visão de detalhe,
// já normalizado com nome e avatar padrão quando o usuário não existe mais.
type CommentAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type CommentView struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	AuthorID  string        `json:"authorId"`
	Author    CommentAuthor `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
}

// PostDetails é o view model da página de detalhe: o post, seus comentários
// e o ranking do grupo do post.
type PostDetails struct {
	Post     models.Post          `json:"post"`
	Comments []CommentView        `json:"comments"`
	Ranking  []models.RankingUser `json:"ranking"`
}

// @Summary Get the detail view of a post
// @Description Retrieve a post with its comments and the ranking of its group
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} PostDetails
// @Failure 404 {object} map[string]string "message: Post não encontrado"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/details [get]
func GetPostDetails(c *gin.Context) {
	postID := c.Param("id")

	// O post vem primeiro: o groupId dele é necessário para o ranking.
	var post models.Post
	if err := db.DB.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar post: " + err.Error()})
		return
	}

	var (
		wg       sync.WaitGroup
		comments []CommentView
		ranking  []models.RankingUser
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		comments = fetchCommentViews(postID)
	}()

	go func() {
		defer wg.Done()
		ranking = fetchGroupRanking(post.GroupID)
	}()

	wg.Wait()

	c.JSON(http.StatusOK, PostDetails{
		Post:     post,
		Comments: comments,
		Ranking:  ranking,
	})
}

// fetchCommentViews carrega os comentários do post e embute os autores,
// com fallback para autores que não existem mais.
func fetchCommentViews(postID string) []CommentView {
	var comments []models.Comment
	if err := db.DB.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		utils.LogError(err, "Erro ao buscar comentários do post")
		return []CommentView{}
	}

	authorIDs := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for _, comment := range comments {
		if !seen[comment.AuthorID] {
			seen[comment.AuthorID] = true
			authorIDs = append(authorIDs, comment.AuthorID)
		}
	}

	authors := make(map[string]models.User)
	if len(authorIDs) > 0 {
		var users []models.User
		if err := db.DB.Where("id IN ?", authorIDs).Find(&users).Error; err != nil {
			utils.LogError(err, "Erro ao buscar autores dos comentários")
		}
		for _, user := range users {
			authors[user.ID] = user
		}
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		author := CommentAuthor{
			ID:    comment.AuthorID,
			Name:  "Usuário Desconhecido",
			Image: models.DefaultAvatar,
		}
		if user, ok := authors[comment.AuthorID]; ok {
			author.ID = user.ID
			if user.Name != "" {
				author.Name = user.Name
			}
			if user.Image != "" {
				author.Image = user.Image
			}
		}

		views = append(views, CommentView{
			ID:        comment.ID,
			Text:      comment.Text,
			AuthorID:  comment.AuthorID,
			Author:    author,
			CreatedAt: comment.CreatedAt,
		})
	}
	return views
}

// fetchGroupRanking degrada para um ranking vazio em caso de erro: só a
// falha do próprio post derruba a requisição.
func fetchGroupRanking(groupID string) []models.RankingUser {
	var users []models.User
	if err := db.DB.Where("group_id = ?", groupID).
		Order("score DESC").Order("username ASC").
		Find(&users).Error; err != nil {
		utils.LogError(err, "Erro ao buscar ranking do grupo")
		return []models.RankingUser{}
	}
	return models.RankUsers(users)
}
