package dto

import (
	"github.com/google/uuid"
)

type UserDTO struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Provider  string    `json:"provider"`
	Credits   int       `json:"credits"`
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

// GuestLoginRequest carries an optional device hint so repeat guests on the
// same device keep their session list.
type GuestLoginRequest struct {
	DeviceId string `json:"device_id,omitempty"`
}

// ObservedProfile is what the client saw from the identity provider. The
// stored profile wins on conflict; observed fields only fill gaps.
type ObservedProfile struct {
	Email     string `json:"email" validate:"required,email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// UnauthorizedDomainError signals that the OAuth client rejected the
// requesting origin or redirect target. Distinguished so the frontend can
// show a configuration message instead of a generic sign-in failure.
type UnauthorizedDomainError struct {
	Provider string `json:"provider"`
}

func (e *UnauthorizedDomainError) Error() string {
	return "sign-in is not authorized for this domain; check the OAuth client's allowed origins and redirect URIs"
}
