package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chordcrack/internal/game"
	"chordcrack/internal/service"
)

// PlayHandler serves the server-driven live game endpoints
type PlayHandler struct {
	playService *service.PlayService
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(playService *service.PlayService) *PlayHandler {
	return &PlayHandler{playService: playService}
}

// Start handles POST /api/play/start
func (h *PlayHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req struct {
		SessionType string `json:"sessionType"`
		ChallengeID string `json:"challengeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	view, err := h.playService.Start(userID, game.SessionType(req.SessionType), req.ChallengeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChallengeNotFound):
			respondWithError(w, http.StatusNotFound, "Challenge not found", "", nil)
		case errors.Is(err, service.ErrNotParticipant):
			respondWithError(w, http.StatusForbidden, "You are not part of this challenge", "", nil)
		case errors.Is(err, service.ErrChallengeClosed):
			respondWithError(w, http.StatusConflict, "This challenge is closed", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to start game", "Game start error", err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

// State handles GET /api/play/state
func (h *PlayHandler) State(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	view, err := h.playService.State(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveGame) {
			respondWithError(w, http.StatusNotFound, "No game in progress", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load game state", "Game state error", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Guess handles POST /api/play/guess
func (h *PlayHandler) Guess(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req struct {
		ChordID string `json:"chordId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChordID == "" {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	view, err := h.playService.Guess(userID, req.ChordID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownChord):
			respondWithError(w, http.StatusBadRequest, "Unknown chord", "", nil)
		case errors.Is(err, service.ErrNoActiveGame):
			respondWithError(w, http.StatusNotFound, "No game in progress", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to submit guess", "Guess error", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Advance handles POST /api/play/advance
func (h *PlayHandler) Advance(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	view, err := h.playService.Advance(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveGame) {
			respondWithError(w, http.StatusNotFound, "No game in progress", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to advance", "Advance error", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Quit handles POST /api/play/quit
func (h *PlayHandler) Quit(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	if err := h.playService.Quit(userID); err != nil {
		if errors.Is(err, service.ErrNoActiveGame) {
			respondWithError(w, http.StatusNotFound, "No game in progress", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to quit game", "Quit error", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
