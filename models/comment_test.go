package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentCreateValidate_EmptyText(t *testing.T) {
	input := CommentCreate{PostID: "p1", AuthorID: "123", Text: ""}

	verr := input.Validate()

	assert.NotNil(t, verr)
	assert.Equal(t, CommentErrEmpty, verr.Code)
}

func TestCommentCreateValidate_TextTooLong(t *testing.T) {
	input := CommentCreate{PostID: "p1", AuthorID: "123", Text: strings.Repeat("a", 151)}

	verr := input.Validate()

	assert.NotNil(t, verr)
	assert.Equal(t, CommentErrTooLong, verr.Code)
}

func TestCommentCreateValidate_TextAtMaxLength(t *testing.T) {
	input := CommentCreate{PostID: "p1", AuthorID: "123", Text: strings.Repeat("a", 150)}

	assert.Nil(t, input.Validate())
}

func TestCommentCreateValidate_MultibyteTextCountsRunes(t *testing.T) {
	// 150 runes multibyte, mais de 150 bytes
	input := CommentCreate{PostID: "p1", AuthorID: "123", Text: strings.Repeat("ã", 150)}

	assert.Nil(t, input.Validate())
}

func TestCommentCreateValidate_Valid(t *testing.T) {
	input := CommentCreate{PostID: "p1", AuthorID: "123", Text: "hello"}

	assert.Nil(t, input.Validate())
}

func TestCommentUpdateValidate(t *testing.T) {
	assert.Nil(t, CommentUpdate{Text: "new value"}.Validate())

	verr := CommentUpdate{Text: ""}.Validate()
	assert.NotNil(t, verr)
	assert.Equal(t, CommentErrEmpty, verr.Code)
}

func TestCommentValidationError_Error(t *testing.T) {
	verr := &CommentValidationError{Code: CommentErrEmpty, Message: "the comment cannot be empty"}

	assert.Equal(t, "the comment cannot be empty", verr.Error())
}
