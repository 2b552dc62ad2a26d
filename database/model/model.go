// Package model defines the persisted entities of fzscripts.
package model

import "time"

// User is a registered account. The stored password hash is never serialized.
type User struct {
	Id             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"`
	Verified       bool      `json:"verified" gorm:"default:false"`
	IsAdmin        bool      `json:"isAdmin" gorm:"default:false"`
	ProfilePicture string    `json:"profilePicture" gorm:"default:''"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Script is a published code artifact owned by a user.
type Script struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Code        string    `json:"code" gorm:"not null"`
	Language    string    `json:"language" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	UserId      int       `json:"userId" gorm:"not null;index"`
	Downloads   int       `json:"downloads" gorm:"default:0"`
	Rating      int       `json:"rating" gorm:"default:0"` // reserved, no write path yet
	CreatedAt   time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserId"`
}
