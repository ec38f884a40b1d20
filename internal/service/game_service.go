package service

import (
	"errors"
	"fmt"

	"chordcrack/internal/game"
	"chordcrack/internal/models"
	"chordcrack/internal/repository"
)

var ErrInvalidSessionResult = errors.New("invalid session result")

const (
	defaultLeaderboardLimit = 25
	maxLeaderboardLimit     = 100
)

// GameService records finished sessions and serves leaderboards and stats
type GameService struct {
	gameRepo *repository.GameRepository
}

// NewGameService creates a new game service
func NewGameService(gameRepo *repository.GameRepository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

// RecordResult validates and appends a finished session for a user.
// Best-effort callers (the live game manager) log the error and move on.
func (s *GameService) RecordResult(userID int64, result game.SessionResult) (*models.GameSession, error) {
	if err := validateResult(result); err != nil {
		return nil, err
	}
	return s.gameRepo.RecordSession(userID, result.Score, result.BestStreak,
		result.CorrectAnswers, result.TotalQuestions, string(result.SessionType))
}

// validateResult bounds-checks a client-reported session before it enters the log
func validateResult(result game.SessionResult) error {
	if result.Score < 0 || result.BestStreak < 0 || result.CorrectAnswers < 0 {
		return fmt.Errorf("%w: negative counter", ErrInvalidSessionResult)
	}
	if result.TotalQuestions < 1 {
		return fmt.Errorf("%w: total questions must be at least 1", ErrInvalidSessionResult)
	}
	if result.CorrectAnswers > result.TotalQuestions {
		return fmt.Errorf("%w: correct exceeds total", ErrInvalidSessionResult)
	}
	if result.TotalQuestions > game.MaxRounds {
		return fmt.Errorf("%w: total exceeds rounds per game", ErrInvalidSessionResult)
	}
	if result.Score > game.MaxRounds*game.Points(1) {
		return fmt.Errorf("%w: score exceeds maximum", ErrInvalidSessionResult)
	}
	switch result.SessionType {
	case game.SessionDailyChallenge, game.SessionSpeedRound, game.SessionSocialChallenge, game.SessionPractice:
	default:
		return fmt.Errorf("%w: unknown session type %q", ErrInvalidSessionResult, result.SessionType)
	}
	return nil
}

// GetLeaderboard returns the ranked top players, optionally filtered by session type
func (s *GameService) GetLeaderboard(sessionType string, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	return s.gameRepo.GetLeaderboard(sessionType, limit)
}

// GetPlayerStats aggregates a user's recorded sessions
func (s *GameService) GetPlayerStats(userID int64) (*models.PlayerStats, error) {
	return s.gameRepo.GetPlayerStats(userID)
}

// GetRecentSessions returns a user's most recent sessions
func (s *GameService) GetRecentSessions(userID int64, limit int) ([]models.GameSession, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.gameRepo.GetUserSessions(userID, limit)
}
