package model

import (
	"time"

	"github.com/google/uuid"
)

type WithdrawalRequest struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail     string    `gorm:"type:text;not null;index"`
	BankName      string    `gorm:"type:text;not null"`
	IfscCode      string    `gorm:"type:text;not null"`
	AccountNumber string    `gorm:"type:text;not null"`
	Amount        int       `gorm:"not null"`
	Status        string    `gorm:"type:text;not null;default:'pending'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawals"
}
