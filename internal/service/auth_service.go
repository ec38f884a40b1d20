package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chordcrack/internal/models"
	"chordcrack/internal/repository"
	"chordcrack/internal/security"
	"chordcrack/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrUnknownProvider    = errors.New("unknown sign-in provider")
)

// TokenPair is an access token plus the refresh session backing it
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// OAuthProvider describes one sign-in provider for the mobile token exchange
type OAuthProvider struct {
	Name        string
	Config      *oauth2.Config
	UserInfoURL string
}

// AuthService handles authentication business logic
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	providers  map[string]OAuthProvider
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, accessTTL, refreshTTL time.Duration, providers map[string]OAuthProvider) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		providers:  providers,
	}
}

// Register creates a new user account and issues a token pair
func (s *AuthService) Register(email, username, password string) (*models.User, *TokenPair, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrEmailTaken
	}

	existing, err = s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrUsernameTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(email, username, passwordHash)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login authenticates a user and issues a token pair
func (s *AuthService) Login(email, password string) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh rotates a refresh session and issues a fresh token pair
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	session, err := s.userRepo.GetSession(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		_ = s.userRepo.DeleteSession(session.ID)
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetUserByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	if err := s.userRepo.DeleteSession(session.ID); err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}
	return s.issueTokens(user)
}

// Logout removes a refresh session
func (s *AuthService) Logout(refreshToken string) error {
	return s.userRepo.DeleteSession(refreshToken)
}

// ValidateAccessToken parses an access token and returns the user ID
func (s *AuthService) ValidateAccessToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(userID)
}

// CleanupExpiredSessions removes expired refresh sessions
func (s *AuthService) CleanupExpiredSessions() error {
	_, err := s.userRepo.DeleteExpiredSessions()
	return err
}

// issueTokens creates an access JWT and a refresh session for a user
func (s *AuthService) issueTokens(user *models.User) (*TokenPair, error) {
	expiresAt := time.Now().Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    "chordcrack",
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	sessionID := security.GenerateSessionID()
	if _, err := s.userRepo.CreateSession(sessionID, user.ID, time.Now().Add(s.refreshTTL)); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: sessionID,
		ExpiresAt:    expiresAt,
	}, nil
}

// oauthUserInfo is the subset of provider userinfo responses we consume
type oauthUserInfo struct {
	ID    string `json:"id"`
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

// ExchangeOAuth exchanges a provider authorization code for a ChordCrack
// account, creating one on first sign-in.
func (s *AuthService) ExchangeOAuth(ctx context.Context, provider, code string) (*models.User, *TokenPair, error) {
	p, ok := s.providers[provider]
	if !ok {
		return nil, nil, ErrUnknownProvider
	}

	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	info, err := fetchUserInfo(ctx, p, token)
	if err != nil {
		return nil, nil, err
	}

	subject := info.Sub
	if subject == "" {
		subject = info.ID
	}
	if subject == "" {
		return nil, nil, fmt.Errorf("provider %s returned no subject", provider)
	}

	user, err := s.userRepo.GetUserByOAuth(provider, subject)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}
	if user == nil {
		user, err = s.createOAuthUser(info.Email, provider, subject)
		if err != nil {
			return nil, nil, err
		}
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *AuthService) createOAuthUser(email, provider, subject string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		// Apple can withhold the email on repeat sign-ins
		email = fmt.Sprintf("%s-%s@users.chordcrack.app", provider, subject)
	}

	username := usernameFromEmail(email)
	for i := 0; i < 5; i++ {
		existing, err := s.userRepo.GetUserByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			break
		}
		username = fmt.Sprintf("%s%d", usernameFromEmail(email), time.Now().UnixNano()%10000)
	}

	return s.userRepo.CreateOAuthUser(email, username, provider, subject)
}

// usernameFromEmail derives a valid username from an email local part
func usernameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	username := b.String()
	if len(username) < 3 {
		username = "player" + username
	}
	if len(username) > 20 {
		username = username[:20]
	}
	return username
}

func fetchUserInfo(ctx context.Context, p OAuthProvider, token *oauth2.Token) (*oauthUserInfo, error) {
	client := p.Config.Client(ctx, token)
	resp, err := client.Get(p.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("user info request failed: %s: %s", resp.Status, body)
	}

	var info oauthUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}
