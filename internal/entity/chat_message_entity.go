package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is append-only within a turn. Image carries the submitted photo
// as a data URI on the user side of a vision turn, nil otherwise.
type ChatMessage struct {
	Id            uuid.UUID
	Chat          string
	Role          string
	Image         *string
	ChatSessionId uuid.UUID
	CreatedAt     time.Time
}
