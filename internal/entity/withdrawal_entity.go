package entity

import (
	"time"

	"github.com/google/uuid"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
)

type WithdrawalRequest struct {
	Id            uuid.UUID
	UserEmail     string
	BankName      string
	IfscCode      string
	AccountNumber string
	Amount        int
	Status        WithdrawalStatus
	CreatedAt     time.Time
}
