package auth

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"campustrade/utils"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// CurrentUserKey is the session entry holding the signed-in user as JSON
const CurrentUserKey = "currentUser"

// SessionStore is the key/value storage the signed-in user lives in
type SessionStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// AuthService signs users in and tracks the current user
type AuthService struct {
	identity IdentityProvider
	session  SessionStore
}

// NewAuthService creates a new AuthService instance
func NewAuthService(identity IdentityProvider, session SessionStore) *AuthService {
	return &AuthService{identity: identity, session: session}
}

// Authenticate checks credentials without touching the session
func (s *AuthService) Authenticate(email, password string) (model.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.User{}, fmt.Errorf("service: %w - email and password are required", marketerrors.ErrInvalidRequest)
	}

	user, err := s.identity.Verify(email, password)
	if err != nil {
		if errors.Is(err, marketerrors.ErrInvalidCredentials) {
			utils.Warn("login rejected", map[string]any{"email": email})
		}
		return model.User{}, fmt.Errorf("service: authenticate: %w", err)
	}
	return user, nil
}

// Login authenticates and stores the user as the current user
func (s *AuthService) Login(email, password string) (model.User, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return model.User{}, err
	}
	if err := s.SetCurrentUser(user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// CurrentUser returns the signed-in user. A missing, unreadable or
// unparsable session entry means nobody is signed in.
func (s *AuthService) CurrentUser() (model.User, bool) {
	raw, ok, err := s.session.Get(CurrentUserKey)
	if err != nil {
		utils.Warn("session unreadable", map[string]any{"error": err.Error()})
		return model.User{}, false
	}
	if !ok || raw == "" {
		return model.User{}, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		utils.Warn("current user entry unparsable", map[string]any{"error": err.Error()})
		return model.User{}, false
	}
	return user, true
}

// SetCurrentUser stores user as the signed-in user in the session
func (s *AuthService) SetCurrentUser(user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("service: encode current user: %w", err)
	}
	if err := s.session.Set(CurrentUserKey, string(raw)); err != nil {
		return fmt.Errorf("service: store current user: %w", err)
	}
	return nil
}

// Logout removes the signed-in user from the session
func (s *AuthService) Logout() error {
	if err := s.session.Delete(CurrentUserKey); err != nil {
		return fmt.Errorf("service: clear current user: %w", err)
	}
	return nil
}
