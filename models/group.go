package models

import (
	"time"
)

// Group delimita o escopo do ranking: os scores só são comparados
// entre membros do mesmo grupo.
type Group struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" binding:"required"`
	Duration  string    `json:"duration"`
	Type      string    `json:"type"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Group) TableName() string {
	return "groups"
}
