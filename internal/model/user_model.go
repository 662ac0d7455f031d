package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:text;not null;uniqueIndex"`
	FullName  string    `gorm:"type:text;not null"`
	AvatarURL string    `gorm:"type:text"`
	Credits   int       `gorm:"not null;default:0"`
	Provider  string    `gorm:"type:text;not null;default:'google'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
