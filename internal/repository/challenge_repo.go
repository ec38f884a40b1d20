package repository

import (
	"database/sql"
	"fmt"
	"time"

	"chordcrack/internal/database"
	"chordcrack/internal/models"
)

// ChallengeRepository handles social challenge database operations
type ChallengeRepository struct {
	db *database.DB
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db *database.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// CreateChallenge inserts a pending challenge
func (r *ChallengeRepository) CreateChallenge(id string, creatorID int64, expiresAt time.Time) (*models.Challenge, error) {
	query := `
		INSERT INTO challenges (id, creator_id, status, expires_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, id, creatorID, models.ChallengeStatusPending, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	return &models.Challenge{
		ID:        id,
		CreatorID: creatorID,
		Status:    models.ChallengeStatusPending,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}, nil
}

// GetChallenge retrieves a challenge by ID, nil if not found
func (r *ChallengeRepository) GetChallenge(id string) (*models.Challenge, error) {
	query := `
		SELECT id, creator_id, opponent_id, status, created_at, expires_at
		FROM challenges
		WHERE id = ?
	`
	challenge := &models.Challenge{}
	var opponentID sql.NullInt64
	err := r.db.QueryRow(query, id).Scan(
		&challenge.ID,
		&challenge.CreatorID,
		&opponentID,
		&challenge.Status,
		&challenge.CreatedAt,
		&challenge.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if opponentID.Valid {
		challenge.OpponentID = &opponentID.Int64
	}
	return challenge, nil
}

// AcceptChallenge attaches an opponent and moves the challenge to accepted
func (r *ChallengeRepository) AcceptChallenge(id string, opponentID int64) error {
	query := `
		UPDATE challenges
		SET opponent_id = ?, status = ?
		WHERE id = ? AND status = ?
	`
	result, err := r.db.Exec(query, opponentID, models.ChallengeStatusAccepted, id, models.ChallengeStatusPending)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("challenge %s is not pending", id)
	}
	return nil
}

// SetStatus updates a challenge's status
func (r *ChallengeRepository) SetStatus(id, status string) error {
	_, err := r.db.Exec("UPDATE challenges SET status = ? WHERE id = ?", status, id)
	return err
}

// RecordScore stores one player's result for a challenge
func (r *ChallengeRepository) RecordScore(challengeID string, userID int64, score, correctAnswers, totalQuestions int) (*models.ChallengeScore, error) {
	query := `
		INSERT INTO challenge_scores (challenge_id, user_id, score, correct_answers, total_questions)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, challengeID, userID, score, correctAnswers, totalQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to record challenge score: %w", err)
	}

	return &models.ChallengeScore{
		ID:             id,
		ChallengeID:    challengeID,
		UserID:         userID,
		Score:          score,
		CorrectAnswers: correctAnswers,
		TotalQuestions: totalQuestions,
		SubmittedAt:    time.Now(),
	}, nil
}

// GetScores retrieves all submitted scores for a challenge
func (r *ChallengeRepository) GetScores(challengeID string) ([]models.ChallengeScore, error) {
	query := `
		SELECT id, challenge_id, user_id, score, correct_answers, total_questions, submitted_at
		FROM challenge_scores
		WHERE challenge_id = ?
		ORDER BY submitted_at
	`
	rows, err := r.db.Query(query, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.ChallengeScore
	for rows.Next() {
		var s models.ChallengeScore
		if err := rows.Scan(&s.ID, &s.ChallengeID, &s.UserID, &s.Score, &s.CorrectAnswers, &s.TotalQuestions, &s.SubmittedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// ExpireOldChallenges marks overdue pending/accepted challenges expired, returning the count
func (r *ChallengeRepository) ExpireOldChallenges() (int64, error) {
	query := `
		UPDATE challenges
		SET status = ?
		WHERE expires_at < ? AND status IN (?, ?)
	`
	result, err := r.db.Exec(query, models.ChallengeStatusExpired, time.Now(),
		models.ChallengeStatusPending, models.ChallengeStatusAccepted)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetUserChallenges retrieves challenges a user created or accepted
func (r *ChallengeRepository) GetUserChallenges(userID int64) ([]models.Challenge, error) {
	query := `
		SELECT id, creator_id, opponent_id, status, created_at, expires_at
		FROM challenges
		WHERE creator_id = ? OR opponent_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []models.Challenge
	for rows.Next() {
		var c models.Challenge
		var opponentID sql.NullInt64
		if err := rows.Scan(&c.ID, &c.CreatorID, &opponentID, &c.Status, &c.CreatedAt, &c.ExpiresAt); err != nil {
			return nil, err
		}
		if opponentID.Valid {
			c.OpponentID = &opponentID.Int64
		}
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

// DeleteUserChallengeScores removes a user's submitted challenge scores
func (r *ChallengeRepository) DeleteUserChallengeScores(userID int64) error {
	_, err := r.db.Exec("DELETE FROM challenge_scores WHERE user_id = ?", userID)
	return err
}
