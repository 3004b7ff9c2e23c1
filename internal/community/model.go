package community

import (
	"time"
)

type Community struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	CreatedAt   time.Time `json:"-"`
}

func (Community) TableName() string {
	return "communities"
}

type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

const (
	msgNameRequired    = "Community name is required"
	msgCommunityExists = "Community already exists"
)
