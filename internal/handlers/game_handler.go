package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"chordcrack/internal/game"
	"chordcrack/internal/service"
)

// GameHandler serves session recording, leaderboards and player stats
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// RecordSession handles POST /api/game/sessions. Offline clients play
// locally and report the finished session here.
func (h *GameHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req struct {
		Score          int    `json:"score"`
		BestStreak     int    `json:"bestStreak"`
		CorrectAnswers int    `json:"correctAnswers"`
		TotalQuestions int    `json:"totalQuestions"`
		SessionType    string `json:"sessionType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	session, err := h.gameService.RecordResult(userID, game.SessionResult{
		Score:          req.Score,
		BestStreak:     req.BestStreak,
		CorrectAnswers: req.CorrectAnswers,
		TotalQuestions: req.TotalQuestions,
		SessionType:    game.SessionType(req.SessionType),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSessionResult) {
			respondWithError(w, http.StatusBadRequest, "Invalid session result", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to record session", "Session record error", err)
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// Leaderboard handles GET /api/game/leaderboard
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	sessionType := r.URL.Query().Get("sessionType")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.gameService.GetLeaderboard(sessionType, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load leaderboard", "Leaderboard error", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// Stats handles GET /api/game/stats
func (h *GameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	stats, err := h.gameService.GetPlayerStats(userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load stats", "Stats error", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// RecentSessions handles GET /api/game/sessions
func (h *GameHandler) RecentSessions(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := h.gameService.GetRecentSessions(userID, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load sessions", "Sessions error", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}
