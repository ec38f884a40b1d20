package repository

import (
	"fmt"
	"time"

	"chordcrack/internal/database"
	"chordcrack/internal/models"
)

// GameRepository handles the append-only game session log and its aggregates
type GameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{db: db}
}

// RecordSession appends one finished game to the session log
func (r *GameRepository) RecordSession(userID int64, score, bestStreak, correctAnswers, totalQuestions int, sessionType string) (*models.GameSession, error) {
	query := `
		INSERT INTO game_sessions (user_id, score, best_streak, correct_answers, total_questions, session_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, score, bestStreak, correctAnswers, totalQuestions, sessionType)
	if err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	return &models.GameSession{
		ID:             id,
		UserID:         userID,
		Score:          score,
		BestStreak:     bestStreak,
		CorrectAnswers: correctAnswers,
		TotalQuestions: totalQuestions,
		SessionType:    sessionType,
		CreatedAt:      time.Now(),
	}, nil
}

// GetUserSessions retrieves a user's most recent sessions
func (r *GameRepository) GetUserSessions(userID int64, limit int) ([]models.GameSession, error) {
	query := `
		SELECT id, user_id, score, best_streak, correct_answers, total_questions, session_type, created_at
		FROM game_sessions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.GameSession
	for rows.Next() {
		var s models.GameSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Score, &s.BestStreak, &s.CorrectAnswers, &s.TotalQuestions, &s.SessionType, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetPlayerStats aggregates a user's recorded sessions
func (r *GameRepository) GetPlayerStats(userID int64) (*models.PlayerStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(score), 0),
		       COALESCE(MAX(score), 0),
		       COALESCE(MAX(best_streak), 0),
		       COALESCE(SUM(correct_answers), 0),
		       COALESCE(SUM(total_questions), 0)
		FROM game_sessions
		WHERE user_id = ?
	`
	stats := &models.PlayerStats{}
	err := r.db.QueryRow(query, userID).Scan(
		&stats.TotalGames,
		&stats.TotalScore,
		&stats.BestScore,
		&stats.BestStreak,
		&stats.CorrectAnswers,
		&stats.TotalQuestions,
	)
	if err != nil {
		return nil, err
	}

	if stats.TotalQuestions > 0 {
		stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions)
	}
	return stats, nil
}

// GetLeaderboard returns the top players by best score for a session type.
// An empty sessionType ranks across all modes.
func (r *GameRepository) GetLeaderboard(sessionType string, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT u.id, u.username, MAX(g.score), SUM(g.score), COUNT(*)
		FROM game_sessions g
		JOIN users u ON u.id = g.user_id
		WHERE (? = '' OR g.session_type = ?)
		GROUP BY u.id, u.username
		ORDER BY MAX(g.score) DESC, SUM(g.score) DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, sessionType, sessionType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	rank := 0
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.BestScore, &e.TotalScore, &e.GamesPlayed); err != nil {
			return nil, err
		}
		rank++
		e.Rank = rank
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteUserSessions removes all recorded sessions for a user
func (r *GameRepository) DeleteUserSessions(userID int64) error {
	_, err := r.db.Exec("DELETE FROM game_sessions WHERE user_id = ?", userID)
	return err
}
