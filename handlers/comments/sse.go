package comments

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gvnna/bookworms/db"
	"github.com/gvnna/bookworms/models"
	"github.com/gvnna/bookworms/utils"

	"github.com/gin-gonic/gin"
)

var (
	// Assinantes SSE por postID.
	subscribers = make(map[string]map[chan string]bool)

	subscribersMutex sync.RWMutex
)

type SSEMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// SSEComment é o comentário enviado pelo stream, já com o nome do autor.
type SSEComment struct {
	ID         string `json:"id"`
	PostID     string `json:"postId"`
	AuthorID   string `json:"authorId"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	CreatedAt  string `json:"createdAt"`
}

func toSSEComment(comment models.Comment) SSEComment {
	var author models.User
	db.DB.Select("name").Where("id = ?", comment.AuthorID).First(&author)

	name := author.Name
	if name == "" {
		name = "Usuário Desconhecido"
	}

	return SSEComment{
		ID:         comment.ID,
		PostID:     comment.PostID,
		AuthorID:   comment.AuthorID,
		Text:       comment.Text,
		AuthorName: name,
		CreatedAt:  comment.CreatedAt.Format(time.RFC3339),
	}
}

// @Summary Subscribe to a post's comment stream
// @Description Connect via SSE to receive the post's comments in real time
// @Tags comments
// @Param postId path string true "Post ID"
// @Success 200 {object} map[string]string "Connected to SSE"
// @Failure 404 {object} map[string]string "message: Post não encontrado"
// @Failure 500 {object} map[string]string "error: Streaming not supported"
// @Router /comments/post/{postId}/sse [get]
func HandleSSE(c *gin.Context) {
	postID := c.Param("postId")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post não encontrado"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Transfer-Encoding", "chunked")
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

	messageChan := make(chan string)

	subscribersMutex.Lock()
	if subscribers[postID] == nil {
		subscribers[postID] = make(map[chan string]bool)
	}
	subscribers[postID][messageChan] = true
	subscribersMutex.Unlock()

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	c.Writer.Write([]byte("event: connected\ndata: {\"status\":\"connected\"}\n\n"))
	flusher.Flush()

	// Replay dos comentários existentes antes de entrar no loop.
	var existing []models.Comment
	if err := db.DB.Where("post_id = ?", postID).Order("created_at ASC").Find(&existing).Error; err != nil {
		utils.LogError(err, "Erro ao buscar comentários para o stream")
	} else {
		for _, comment := range existing {
			msg := SSEMessage{
				Type:    "existing_comment",
				Payload: toSSEComment(comment),
			}

			jsonData, err := json.Marshal(msg)
			if err != nil {
				utils.LogError(err, "Erro ao serializar mensagem SSE")
				continue
			}

			c.Writer.Write(fmt.Appendf(nil, "event: comment\ndata: %s\n\n", jsonData))
			flusher.Flush()
		}
	}

	// Cancelado quando o cliente desconecta.
	ctx := c.Request.Context()

	defer func() {
		subscribersMutex.Lock()
		delete(subscribers[postID], messageChan)
		if len(subscribers[postID]) == 0 {
			delete(subscribers, postID)
		}
		subscribersMutex.Unlock()
		close(messageChan)
	}()

	for {
		select {
		case message, ok := <-messageChan:
			if !ok {
				return
			}
			c.Writer.Write([]byte(message))
			flusher.Flush()
		case <-ctx.Done():
			return
		case <-time.After(30 * time.Second):
			c.Writer.Write([]byte("event: ping\ndata: {}\n\n"))
			flusher.Flush()
		}
	}
}

// broadcastComment envia um comentário recém-criado a todos os assinantes do
// post. Sem assinantes, não toca no banco.
func broadcastComment(comment models.Comment) {
	subscribersMutex.RLock()
	_, hasSubscribers := subscribers[comment.PostID]
	subscribersMutex.RUnlock()

	if !hasSubscribers {
		return
	}

	msg := SSEMessage{
		Type:    "new_comment",
		Payload: toSSEComment(comment),
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		utils.LogError(err, "Erro ao serializar mensagem SSE")
		return
	}

	sseData := fmt.Sprintf("event: comment\ndata: %s\n\n", jsonData)

	subscribersMutex.RLock()
	defer subscribersMutex.RUnlock()

	for clientChan := range subscribers[comment.PostID] {
		select {
		case clientChan <- sseData:
		default:
			utils.LogError(nil, "Erro ao difundir comentário: canal cheio ou fechado")
		}
	}
}
