package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserProviderName string

const (
	UserProviderGoogle UserProviderName = "google"
	UserProviderGuest  UserProviderName = "guest"
)

// User is the campus identity. Email is the stable identity key used by the
// profile merge on sign-in; Credits is the only mutable numeric field and only
// the confirmed-report transition may increment it.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	AvatarURL string
	Credits   int
	Provider  UserProviderName
	CreatedAt time.Time
	UpdatedAt time.Time
}
