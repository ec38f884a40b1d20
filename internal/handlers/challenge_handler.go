package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chordcrack/internal/service"
)

// ChallengeHandler serves the head-to-head challenge endpoints
type ChallengeHandler struct {
	challengeService *service.ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// Create handles POST /api/challenges
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req struct {
		OpponentEmail string `json:"opponentEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	challenge, err := h.challengeService.CreateChallenge(userID, req.OpponentEmail)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create challenge", "Challenge create error", err)
		return
	}

	respondJSON(w, http.StatusCreated, challenge)
}

// Accept handles POST /api/challenges/{id}/accept
func (h *ChallengeHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	challengeID := r.PathValue("id")

	challenge, err := h.challengeService.AcceptChallenge(challengeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChallengeNotFound):
			respondWithError(w, http.StatusNotFound, "Challenge not found", "", nil)
		case errors.Is(err, service.ErrCannotChallengeSelf):
			respondWithError(w, http.StatusConflict, "You cannot accept your own challenge", "", nil)
		case errors.Is(err, service.ErrChallengeClosed):
			respondWithError(w, http.StatusConflict, "This challenge is no longer open", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to accept challenge", "Challenge accept error", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, challenge)
}

// Get handles GET /api/challenges/{id}
func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	challengeID := r.PathValue("id")

	view, err := h.challengeService.GetChallenge(challengeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChallengeNotFound):
			respondWithError(w, http.StatusNotFound, "Challenge not found", "", nil)
		case errors.Is(err, service.ErrNotParticipant):
			respondWithError(w, http.StatusForbidden, "You are not part of this challenge", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to load challenge", "Challenge load error", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// List handles GET /api/challenges
func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	challenges, err := h.challengeService.GetUserChallenges(userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load challenges", "Challenge list error", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"challenges": challenges})
}

// SubmitScore handles POST /api/challenges/{id}/scores. Offline clients play
// a challenge locally and report the score here.
func (h *ChallengeHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	challengeID := r.PathValue("id")

	var req struct {
		Score          int `json:"score"`
		CorrectAnswers int `json:"correctAnswers"`
		TotalQuestions int `json:"totalQuestions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	accepted, err := h.challengeService.SubmitScore(challengeID, userID, req.Score, req.CorrectAnswers, req.TotalQuestions)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChallengeNotFound):
			respondWithError(w, http.StatusNotFound, "Challenge not found", "", nil)
		case errors.Is(err, service.ErrNotParticipant):
			respondWithError(w, http.StatusForbidden, "You are not part of this challenge", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to submit score", "Score submit error", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"accepted": accepted})
}
