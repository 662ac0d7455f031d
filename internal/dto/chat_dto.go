package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id      uuid.UUID             `json:"id"`
	Welcome *SendChatResponseChat `json:"welcome,omitempty"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	// A turn needs text, an image, or both.
	Chat string `json:"chat" validate:"required_without=Image"`
	// Image is a base64 data URI. Its presence switches the turn to the
	// vision report path.
	Image *string `json:"image,omitempty"`
}

type SendChatResponseChat struct {
	Id        uuid.UUID `json:"id"`
	Chat      string    `json:"chat"`
	Role      string    `json:"role"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId uuid.UUID             `json:"chat_session_id"`
	Sent          *SendChatResponseChat `json:"sent"`
	Reply         *SendChatResponseChat `json:"reply"`
	// Mode is "rag" for text turns and "report" for image turns.
	Mode string `json:"mode"`
	// CreditsAwarded is non-zero only when a report was confirmed this turn.
	CreditsAwarded int `json:"credits_awarded,omitempty"`
	Credits        int `json:"credits"`
}

type DeleteSessionRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
}

// TurnInFlightError signals a second send on a session whose previous turn
// has not finished.
type TurnInFlightError struct {
	ChatSessionId uuid.UUID `json:"chat_session_id"`
}

func (e *TurnInFlightError) Error() string {
	return "a reply for this session is still being generated"
}
