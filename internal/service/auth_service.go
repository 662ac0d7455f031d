package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"campus-ai-be/internal/constant"
	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/pkg/logger"
	"campus-ai-be/internal/repository/specification"
	"campus-ai-be/internal/repository/unitofwork"
	"campus-ai-be/pkg/connectivity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
	GuestLogin(ctx context.Context) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
	latch      *connectivity.Latch
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, latch *connectivity.Latch, log logger.ILogger) IAuthService {
	conf := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &authService{
		uowFactory: uowFactory,
		googleConf: conf,
		latch:      latch,
		logger:     log,
	}
}

func (s *authService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *authService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	if provider != "google" {
		return nil, errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("AuthService", "OAuth code exchange failed", map[string]interface{}{"error": err.Error()})
		if isUnauthorizedDomain(err) {
			return nil, &dto.UnauthorizedDomainError{Provider: provider}
		}
		return nil, fmt.Errorf("code exchange failed: %v", err)
	}

	userInfoURL := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken

	resp, err := http.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %v", err)
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}

	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}

	observed := dto.ObservedProfile{
		Email:     googleUser.Email,
		FullName:  googleUser.Name,
		AvatarURL: googleUser.Picture,
	}

	user, err := s.syncProfile(ctx, observed, entity.UserProviderGoogle)
	if err != nil {
		return nil, err
	}

	return s.buildLoginResponse(user)
}

// GuestLogin bootstraps an anonymous identity with a fixed starting balance.
// Guests are real rows so the credit and report flows work unchanged.
func (s *authService) GuestLogin(ctx context.Context) (*dto.LoginResponse, error) {
	guestId := uuid.New()
	user := &entity.User{
		Id:        guestId,
		Email:     fmt.Sprintf("guest-%s@guest.local", guestId),
		FullName:  "Guest Student",
		AvatarURL: dicebearAvatar(guestId.String()),
		Credits:   constant.GuestStartingCredits,
		Provider:  entity.UserProviderGuest,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("AuthService", "Guest session bootstrapped", map[string]interface{}{"user_id": user.Id})

	return s.buildLoginResponse(user)
}

// syncProfile is the create-or-merge step on every sign-in. Stored fields win
// over freshly observed ones; observed values only fill gaps, so the credit
// balance and any prior profile edits survive re-login.
func (s *authService) syncProfile(ctx context.Context, observed dto.ObservedProfile, provider entity.UserProviderName) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: observed.Email})
	if err != nil {
		// Any profile-store error still signs the student in, on a transient
		// identity with the default balance. Permission denials additionally
		// latch the process offline.
		state := s.latch.Observe(err)
		s.logger.Warn("AuthService", "Profile store error, serving default identity", map[string]interface{}{
			"email": observed.Email,
			"state": state.String(),
			"error": err.Error(),
		})
		return s.offlineUser(observed, provider), nil
	}

	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     observed.Email,
			FullName:  observed.FullName,
			AvatarURL: observed.AvatarURL,
			Credits:   0,
			Provider:  provider,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if user.AvatarURL == "" {
			user.AvatarURL = dicebearAvatar(observed.Email)
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		defer uow.Rollback()

		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}

		s.logger.Info("AuthService", "New user created", map[string]interface{}{"user_id": user.Id, "email": user.Email})
		return user, nil
	}

	// Merge: only fill fields the stored record is missing.
	changed := false
	if user.FullName == "" && observed.FullName != "" {
		user.FullName = observed.FullName
		changed = true
	}
	if user.AvatarURL == "" {
		if observed.AvatarURL != "" {
			user.AvatarURL = observed.AvatarURL
		} else {
			user.AvatarURL = dicebearAvatar(user.Email)
		}
		changed = true
	}

	if changed {
		user.UpdatedAt = time.Now()
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *authService) offlineUser(observed dto.ObservedProfile, provider entity.UserProviderName) *entity.User {
	return &entity.User{
		Id:        uuid.New(),
		Email:     observed.Email,
		FullName:  observed.FullName,
		AvatarURL: dicebearAvatar(observed.Email),
		Credits:   constant.OfflineDefaultCredits,
		Provider:  provider,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (s *authService) buildLoginResponse(user *entity.User) (*dto.LoginResponse, error) {
	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"provider": string(user.Provider),
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := jwtToken.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User: dto.UserDTO{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
			Provider:  string(user.Provider),
			Credits:   user.Credits,
		},
	}, nil
}

// isUnauthorizedDomain reports whether an OAuth exchange failure means the
// client is not authorized for the requesting origin or redirect target.
func isUnauthorizedDomain(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		switch retrieveErr.ErrorCode {
		case "redirect_uri_mismatch", "unauthorized_client", "invalid_client":
			return true
		}
	}

	msg := err.Error()
	return strings.Contains(msg, "redirect_uri_mismatch") || strings.Contains(msg, "unauthorized_client")
}

func dicebearAvatar(seed string) string {
	return "https://api.dicebear.com/8.x/initials/svg?seed=" + seed
}
