package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Provider  string    `json:"provider"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

type RedeemRequest struct {
	Amount        int    `json:"amount" validate:"required,gt=0"`
	BankName      string `json:"bank_name" validate:"required"`
	IfscCode      string `json:"ifsc_code" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
}

type RedeemResponse struct {
	WithdrawalId uuid.UUID `json:"withdrawal_id"`
	Amount       int       `json:"amount"`
	Status       string    `json:"status"`
	Credits      int       `json:"credits"`
}

type ReportDTO struct {
	Id          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Count       int       `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
}
