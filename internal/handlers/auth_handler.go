package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chordcrack/internal/models"
	"chordcrack/internal/service"
	"chordcrack/internal/validation"
)

// AuthHandler serves registration, login and token lifecycle endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// authResponse pairs a user with freshly issued tokens
type authResponse struct {
	User   *models.User       `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	user, tokens, err := h.authService.Register(req.Email, req.Username, req.Password)
	if err != nil {
		var vErr validation.ValidationError
		switch {
		case errors.As(err, &vErr):
			respondWithError(w, http.StatusBadRequest, vErr.Message, "", nil)
		case errors.Is(err, service.ErrEmailTaken):
			respondWithError(w, http.StatusConflict, "An account with this email already exists", "", nil)
		case errors.Is(err, service.ErrUsernameTaken):
			respondWithError(w, http.StatusConflict, "This username is taken", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Registration failed", "Registration error", err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{User: user, Tokens: tokens})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	user, tokens, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Login failed", "Login error", err)
		return
	}

	respondJSON(w, http.StatusOK, authResponse{User: user, Tokens: tokens})
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, service.ErrSessionExpired) {
			respondWithError(w, http.StatusUnauthorized, "Session expired, sign in again", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Token refresh failed", "Refresh error", err)
		return
	}

	respondJSON(w, http.StatusOK, tokens)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Logout failed", "Logout error", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// OAuthExchange handles POST /api/auth/oauth/{provider}. The mobile client
// completes the provider flow natively and posts the authorization code here.
func (h *AuthHandler) OAuthExchange(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	user, tokens, err := h.authService.ExchangeOAuth(r.Context(), provider, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProvider) {
			respondWithError(w, http.StatusNotFound, "Unknown sign-in provider", "", nil)
			return
		}
		respondWithError(w, http.StatusBadGateway, "Sign-in failed", "OAuth exchange error", err)
		return
	}

	respondJSON(w, http.StatusOK, authResponse{User: user, Tokens: tokens})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load profile", "Profile lookup error", err)
		return
	}
	if user == nil {
		respondWithError(w, http.StatusNotFound, "User not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// CheckPasswordStrength handles POST /api/auth/password-strength. The client
// shows the meter while the user types, before submitting registration.
func (h *AuthHandler) CheckPasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	strength := validation.PasswordStrength(req.Password)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"strength":   strength.String(),
		"acceptable": strength >= validation.StrengthFair && len(req.Password) >= 8,
	})
}
