package models

import (
	"time"
	"unicode/utf8"
)

// CommentMaxLength é o limite de caracteres de um comentário.
const CommentMaxLength = 150

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id"`
	AuthorID  string    `json:"authorId" gorm:"column:author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentErrorCode identifica a regra de validação violada. O controller
// decide o status HTTP e a mensagem localizada a partir do código, nunca
// comparando strings de erro.
type CommentErrorCode string

const (
	CommentErrEmpty   CommentErrorCode = "EMPTY_TEXT"
	CommentErrTooLong CommentErrorCode = "TEXT_TOO_LONG"
)

type CommentValidationError struct {
	Code    CommentErrorCode
	Message string
}

func (e *CommentValidationError) Error() string {
	return e.Message
}

type CommentCreate struct {
	PostID   string `json:"postId" binding:"required"`
	AuthorID string `json:"authorId" binding:"required"`
	Text     string `json:"text"`
}

func (c CommentCreate) Validate() *CommentValidationError {
	return validateCommentText(c.Text)
}

type CommentUpdate struct {
	Text string `json:"text"`
}

func (c CommentUpdate) Validate() *CommentValidationError {
	return validateCommentText(c.Text)
}

func validateCommentText(text string) *CommentValidationError {
	if text == "" {
		return &CommentValidationError{
			Code:    CommentErrEmpty,
			Message: "the comment cannot be empty",
		}
	}
	if utf8.RuneCountInString(text) > CommentMaxLength {
		return &CommentValidationError{
			Code:    CommentErrTooLong,
			Message: "the comment must not exceed 150 characters",
		}
	}
	return nil
}
