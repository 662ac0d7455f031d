package dto_test

import (
	"testing"

	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSendChatRequestValidation(t *testing.T) {
	image := "data:image/jpeg;base64,AAAA"
	sessionId := uuid.New()

	cases := []struct {
		name    string
		request dto.SendChatRequest
		wantErr bool
	}{
		{
			name:    "text only",
			request: dto.SendChatRequest{ChatSessionId: sessionId, Chat: "hello"},
		},
		{
			name:    "image only",
			request: dto.SendChatRequest{ChatSessionId: sessionId, Image: &image},
		},
		{
			name:    "text and image",
			request: dto.SendChatRequest{ChatSessionId: sessionId, Chat: "broken bench", Image: &image},
		},
		{
			name:    "neither text nor image",
			request: dto.SendChatRequest{ChatSessionId: sessionId},
			wantErr: true,
		},
		{
			name:    "missing session id",
			request: dto.SendChatRequest{Chat: "hello"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := serverutils.ValidateRequest(tc.request)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
