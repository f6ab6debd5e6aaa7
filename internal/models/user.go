package models

import (
	"github.com/kerimovok/go-pkg-database/sql"
)

// User represents a registered account
type User struct {
	sql.BaseModel
	Username     string `json:"username" gorm:"not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"not null"`
	Email        string `json:"email" gorm:"not null"`
}
