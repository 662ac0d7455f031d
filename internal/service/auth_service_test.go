package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/entity"
	"campus-ai-be/pkg/connectivity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func authFixture(userRepo *fakeUserRepo) (*authService, *connectivity.Latch) {
	latch := connectivity.NewLatch()
	uow := &fakeUnitOfWork{userRepo: userRepo}
	svc := NewAuthService(&fakeFactory{uow: uow}, latch, nopLogger{}).(*authService)
	return svc, latch
}

func TestGuestLogin_BootstrapsFreshIdentity(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc, _ := authFixture(userRepo)

	res, err := svc.GuestLogin(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "guest", res.User.Provider)
	assert.Equal(t, 50, res.User.Credits)
	assert.True(t, strings.HasSuffix(res.User.Email, "@guest.local"))

	require.Len(t, userRepo.created, 1)
	assert.Equal(t, entity.UserProviderGuest, userRepo.created[0].Provider)

	// A second guest login is a fresh identity, never a resumed one.
	again, err := svc.GuestLogin(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, res.User.Id, again.User.Id)
	assert.Equal(t, 50, again.User.Credits)
}

func TestSyncProfile_NewUserStartsAtZeroCredits(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc, _ := authFixture(userRepo)

	observed := dto.ObservedProfile{Email: "fresh@somaiya.edu", FullName: "Fresh Student"}
	user, err := svc.syncProfile(context.Background(), observed, entity.UserProviderGoogle)
	require.NoError(t, err)

	assert.Equal(t, 0, user.Credits)
	assert.Equal(t, "Fresh Student", user.FullName)
	// No picture observed: seeded placeholder avatar.
	assert.Contains(t, user.AvatarURL, "dicebear.com")
	require.Len(t, userRepo.created, 1)
}

func TestSyncProfile_StoredFieldsWinOnReLogin(t *testing.T) {
	stored := &entity.User{
		Email:     "senior@somaiya.edu",
		FullName:  "Edited Name",
		AvatarURL: "https://cdn.example/custom.png",
		Credits:   340,
		Provider:  entity.UserProviderGoogle,
	}
	userRepo := &fakeUserRepo{user: stored}
	svc, _ := authFixture(userRepo)

	observed := dto.ObservedProfile{
		Email:     "senior@somaiya.edu",
		FullName:  "Google Name",
		AvatarURL: "https://lh3.googleusercontent.com/new.jpg",
	}
	user, err := svc.syncProfile(context.Background(), observed, entity.UserProviderGoogle)
	require.NoError(t, err)

	assert.Equal(t, "Edited Name", user.FullName)
	assert.Equal(t, "https://cdn.example/custom.png", user.AvatarURL)
	assert.Equal(t, 340, user.Credits)
	assert.Empty(t, userRepo.created)
	assert.Empty(t, userRepo.updated)
}

func TestSyncProfile_ObservedFillsMissingFields(t *testing.T) {
	stored := &entity.User{
		Email:    "gapped@somaiya.edu",
		Credits:  20,
		Provider: entity.UserProviderGoogle,
	}
	userRepo := &fakeUserRepo{user: stored}
	svc, _ := authFixture(userRepo)

	observed := dto.ObservedProfile{
		Email:     "gapped@somaiya.edu",
		FullName:  "Google Name",
		AvatarURL: "https://lh3.googleusercontent.com/pic.jpg",
	}
	user, err := svc.syncProfile(context.Background(), observed, entity.UserProviderGoogle)
	require.NoError(t, err)

	assert.Equal(t, "Google Name", user.FullName)
	assert.Equal(t, "https://lh3.googleusercontent.com/pic.jpg", user.AvatarURL)
	assert.Equal(t, 20, user.Credits)
	require.Len(t, userRepo.updated, 1)
}

func TestSyncProfile_OfflineLatchServesTransientIdentity(t *testing.T) {
	userRepo := &fakeUserRepo{findErr: errors.New("pq: permission denied for table users")}
	svc, latch := authFixture(userRepo)

	observed := dto.ObservedProfile{Email: "anyone@somaiya.edu", FullName: "Anyone"}
	user, err := svc.syncProfile(context.Background(), observed, entity.UserProviderGoogle)
	require.NoError(t, err)

	assert.Equal(t, 150, user.Credits)
	assert.Empty(t, userRepo.created)
	assert.Equal(t, connectivity.StateOffline, latch.State())
}

func TestSyncProfile_TransientErrorServesDefaultIdentity(t *testing.T) {
	userRepo := &fakeUserRepo{findErr: errors.New("connection reset by peer")}
	svc, latch := authFixture(userRepo)

	user, err := svc.syncProfile(context.Background(), dto.ObservedProfile{Email: "x@somaiya.edu", FullName: "X"}, entity.UserProviderGoogle)
	require.NoError(t, err)

	// Sign-in survives the store error on the default balance; a transient
	// failure degrades but must not latch offline.
	assert.Equal(t, 150, user.Credits)
	assert.Empty(t, userRepo.created)
	assert.Equal(t, connectivity.StateDegraded, latch.State())
}

func TestIsUnauthorizedDomain(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "redirect mismatch code",
			err:  &oauth2.RetrieveError{ErrorCode: "redirect_uri_mismatch"},
			want: true,
		},
		{
			name: "unauthorized client code",
			err:  &oauth2.RetrieveError{ErrorCode: "unauthorized_client"},
			want: true,
		},
		{
			name: "wrapped retrieve error",
			err:  fmt.Errorf("exchange: %w", &oauth2.RetrieveError{ErrorCode: "invalid_client"}),
			want: true,
		},
		{
			name: "expired grant",
			err:  &oauth2.RetrieveError{ErrorCode: "invalid_grant"},
			want: false,
		},
		{
			name: "network failure",
			err:  errors.New("dial tcp: connection refused"),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUnauthorizedDomain(tc.err))
		})
	}
}

func TestGetLoginURL_RejectsUnknownProvider(t *testing.T) {
	svc, _ := authFixture(&fakeUserRepo{})

	_, err := svc.GetLoginURL("github")
	require.Error(t, err)

	url, err := svc.GetLoginURL("google")
	require.NoError(t, err)
	assert.Contains(t, url, "accounts.google.com")
}
