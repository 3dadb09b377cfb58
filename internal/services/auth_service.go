package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mapmate/internal/models"
	"mapmate/internal/session"
	"mapmate/internal/validators"
	"mapmate/pkg/logger"
)

// AuthService is the client of the authentication microservice plus the
// local session it produces. The token is decoded locally to populate the
// session user; the client holds no signing secret, so validation is
// limited to well-formedness and expiry.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (models.User, error)
	Logout() error

	// RestoreSession silently re-authenticates from the stored token when
	// it is present and unexpired; otherwise the stored token is cleared
	// and the session stays logged out.
	RestoreSession() (models.User, bool)

	CurrentUser() (models.User, bool)
	Token() string
}

type authService struct {
	baseURL    string
	httpClient *http.Client
	tokens     *session.TokenStore
	logger     *logger.Logger

	mu    sync.RWMutex
	user  *models.User
	token string
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

func NewAuthService(baseURL string, httpClient *http.Client, tokens *session.TokenStore, log *logger.Logger) AuthService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &authService{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     log,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) error {
	if errs := validators.ValidateCredentials(&validators.CredentialsRequest{
		Username: username,
		Password: password,
	}); len(errs) > 0 {
		return fmt.Errorf("registration failed: %w", errs)
	}

	body, err := json.Marshal(credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("failed to encode register request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/register", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create register request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serviceError(resp, "registration failed")
	}

	s.logger.WithUsername(username).Info("User registered")
	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	if errs := validators.ValidateCredentials(&validators.CredentialsRequest{
		Username: username,
		Password: password,
	}); len(errs) > 0 {
		return models.User{}, fmt.Errorf("login failed: %w", errs)
	}

	body, err := json.Marshal(credentials{Username: username, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.User{}, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.User{}, serviceError(resp, "login failed")
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.User{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if payload.Token == "" {
		return models.User{}, fmt.Errorf("login failed: response carried no token")
	}

	user := payload.User
	if user == nil || user.Username == "" {
		claims, err := decodeClaims(payload.Token)
		if err != nil {
			return models.User{}, fmt.Errorf("login failed: %w", err)
		}
		user = &models.User{Username: claims.Username}
	}

	if err := s.tokens.Save(payload.Token); err != nil {
		s.logger.WithError(err).Warn("Failed to persist auth token")
	}

	s.mu.Lock()
	s.user = user
	s.token = payload.Token
	s.mu.Unlock()

	s.logger.WithUsername(user.Username).Info("User logged in")
	return *user, nil
}

func (s *authService) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	return s.tokens.Clear()
}

func (s *authService) RestoreSession() (models.User, bool) {
	token, err := s.tokens.Load()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load stored auth token")
		return models.User{}, false
	}
	if token == "" {
		return models.User{}, false
	}

	claims, err := decodeClaims(token)
	if err != nil || !claims.validNow() {
		// Expired or malformed token is dropped rather than kept around.
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.logger.WithError(clearErr).Warn("Failed to clear stale auth token")
		}
		return models.User{}, false
	}

	user := models.User{Username: claims.Username}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	s.logger.WithUsername(user.Username).Info("Session restored from stored token")
	return user, true
}

func (s *authService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *authService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (c *tokenClaims) validNow() bool {
	return c.ExpiresAt != nil && c.ExpiresAt.After(time.Now())
}

// decodeClaims parses the token without signature verification. The auth
// service is the only party holding the secret; locally the token is
// trusted as far as its expiry.
func decodeClaims(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("token carries no username claim")
	}
	return claims, nil
}
