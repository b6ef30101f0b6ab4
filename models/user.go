package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Username  string    `json:"username" gorm:"uniqueIndex"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Score     int       `json:"score" gorm:"default:0"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	GroupID   string    `json:"groupId" gorm:"column:group_id"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserCreate struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	GroupID  string `json:"groupId"`
}

func (User) TableName() string {
	return "users"
}
