package auth

import (
	"time"
)

// User is the stored account. Password holds the bcrypt hash only.
type User struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	College     *string   `gorm:"size:255" json:"college"`
	PassOutYear int       `gorm:"not null;column:pass_out_year" json:"pass_out_year"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// ProfileSummary is every public field of a user; it never carries the hash.
type ProfileSummary struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	College     *string `json:"college"`
	PassOutYear int     `json:"pass_out_year"`
}

func (u *User) Summary() *ProfileSummary {
	return &ProfileSummary{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		College:     u.College,
		PassOutYear: u.PassOutYear,
	}
}

type RegisterRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	College     *string `json:"college"`
	PassOutYear int     `json:"pass_out_year" binding:"required"`
	Password    string  `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string          `json:"token"`
	User  *ProfileSummary `json:"user"`
}

const (
	msgMissingFields      = "Missing required fields"
	msgMissingCredentials = "Missing email or password"
	msgEmailTaken         = "Email already registered"
	msgUserNotFound       = "User not found"
	msgIncorrectPassword  = "Incorrect password"
)
