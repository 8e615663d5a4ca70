// Package services file: services/auth_service.go
package services

import (
	"memberhub/logger"
	"memberhub/models"
)

// AuthServiceInterface is the gateway for login, logout and session
// rehydration against the backend's /auth endpoints.
type AuthServiceInterface interface {
	// Login exchanges credentials for the staff identity and the upstream
	// session cookie that later calls must replay.
	Login(creds models.Credentials) (models.User, string, error)
	Logout(cookie string) error
	// Profile restores the identity behind an existing upstream cookie.
	Profile(cookie string) (models.User, error)
}

// AuthService implements AuthServiceInterface over the shared API client.
type AuthService struct {
	client *APIClient
}

// NewAuthService creates an AuthService.
func NewAuthService(client *APIClient) *AuthService {
	return &AuthService{client: client}
}

// userEnvelope is the {user: {...}} shape shared by login and profile.
type userEnvelope struct {
	User models.User `json:"user"`
}

// Login posts credentials to /auth/login and lifts the session cookie from
// the response so the console can act on the operator's behalf.
func (s *AuthService) Login(creds models.Credentials) (models.User, string, error) {
	var envelope userEnvelope
	header, err := s.client.postJSON(s.client.BackendURL+"/auth/login", "", creds, &envelope)
	if err != nil {
		logger.Warn.Printf("[AuthService.Login] login failed for %s: %v", creds.Username, err)
		return models.User{}, "", err
	}

	cookie := cookieHeaderFromResponse(header)
	logger.Info.Printf("[AuthService.Login] user %s authenticated", envelope.User.Username)
	return envelope.User, cookie, nil
}

// Logout tells the backend to invalidate the upstream session.
func (s *AuthService) Logout(cookie string) error {
	_, err := s.client.postJSON(s.client.BackendURL+"/auth/logout", cookie, struct{}{}, nil)
	if err != nil {
		logger.Warn.Printf("[AuthService.Logout] logout call failed: %v", err)
	}
	return err
}

// Profile rehydrates the session from a previously issued cookie.
func (s *AuthService) Profile(cookie string) (models.User, error) {
	var envelope userEnvelope
	if err := s.client.getJSON(s.client.BackendURL+"/auth/profile", cookie, &envelope); err != nil {
		return models.User{}, err
	}
	return envelope.User, nil
}
