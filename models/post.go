package models

import (
	"time"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string    `json:"title" binding:"required"`
	Body      string    `json:"body,omitempty"`
	Image     string    `json:"image"`
	NumPages  int       `json:"numPages" gorm:"column:num_pages"`
	AuthorID  string    `json:"authorId" gorm:"column:author_id"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	GroupID   string    `json:"groupId" gorm:"column:group_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PostCreate struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body"`
	Image    string `json:"image"`
	NumPages int    `json:"numPages"`
	GroupID  string `json:"groupId" binding:"required"`
}

type PostUpdate struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Image    string `json:"image"`
	NumPages int    `json:"numPages"`
}

func (Post) TableName() string {
	return "posts"
}
