package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"chordcrack/internal/database"
)

// BackupData is the complete database backup document
type BackupData struct {
	Version      string                 `json:"version"`
	ExportedAt   time.Time              `json:"exported_at"`
	DatabaseType string                 `json:"database_type"`
	Users        []UserBackup           `json:"users"`
	Sessions     []GameSessionBackup    `json:"game_sessions"`
	Challenges   []ChallengeBackup      `json:"challenges"`
	Scores       []ChallengeScoreBackup `json:"challenge_scores"`
}

// UserBackup is a user record for backup
type UserBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"password_hash"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthSubject  string    `json:"oauth_subject"`
	CreatedAt     time.Time `json:"created_at"`
}

// GameSessionBackup is a session-log row for backup
type GameSessionBackup struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Score          int       `json:"score"`
	BestStreak     int       `json:"best_streak"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	SessionType    string    `json:"session_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChallengeBackup is a challenge row for backup
type ChallengeBackup struct {
	ID         string    `json:"id"`
	CreatorID  int64     `json:"creator_id"`
	OpponentID *int64    `json:"opponent_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ChallengeScoreBackup is a challenge score row for backup
type ChallengeScoreBackup struct {
	ID             int64     `json:"id"`
	ChallengeID    string    `json:"challenge_id"`
	UserID         int64     `json:"user_id"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// BackupService exports and imports the full database as JSON
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes the full database to a JSON file
func (s *BackupService) Export(outputPath string) error {
	data := &BackupData{
		Version:      "1",
		ExportedAt:   time.Now(),
		DatabaseType: s.db.Dialect.DriverName(),
	}

	var err error
	if data.Users, err = s.exportUsers(); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if data.Sessions, err = s.exportSessions(); err != nil {
		return fmt.Errorf("failed to export game sessions: %w", err)
	}
	if data.Challenges, err = s.exportChallenges(); err != nil {
		return fmt.Errorf("failed to export challenges: %w", err)
	}
	if data.Scores, err = s.exportScores(); err != nil {
		return fmt.Errorf("failed to export challenge scores: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	log.Printf("Exported %d users, %d sessions, %d challenges, %d scores to %s",
		len(data.Users), len(data.Sessions), len(data.Challenges), len(data.Scores), outputPath)
	return nil
}

// Import restores a backup file. With clear set, existing rows are removed first.
func (s *BackupService) Import(inputPath string, clear bool) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var data BackupData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}

	if clear {
		for _, table := range []string{"challenge_scores", "challenges", "game_sessions", "auth_sessions", "users"} {
			if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
	}

	for _, u := range data.Users {
		_, err := s.db.Exec(`
			INSERT INTO users (id, email, username, password_hash, oauth_provider, oauth_subject, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, u.ID, u.Email, u.Username, u.PasswordHash, u.OAuthProvider, u.OAuthSubject, u.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.ID, err)
		}
	}

	for _, g := range data.Sessions {
		_, err := s.db.Exec(`
			INSERT INTO game_sessions (id, user_id, score, best_streak, correct_answers, total_questions, session_type, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, g.ID, g.UserID, g.Score, g.BestStreak, g.CorrectAnswers, g.TotalQuestions, g.SessionType, g.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import game session %d: %w", g.ID, err)
		}
	}

	for _, c := range data.Challenges {
		_, err := s.db.Exec(`
			INSERT INTO challenges (id, creator_id, opponent_id, status, created_at, expires_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, c.ID, c.CreatorID, c.OpponentID, c.Status, c.CreatedAt, c.ExpiresAt)
		if err != nil {
			return fmt.Errorf("failed to import challenge %s: %w", c.ID, err)
		}
	}

	for _, score := range data.Scores {
		_, err := s.db.Exec(`
			INSERT INTO challenge_scores (id, challenge_id, user_id, score, correct_answers, total_questions, submitted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, score.ID, score.ChallengeID, score.UserID, score.Score, score.CorrectAnswers, score.TotalQuestions, score.SubmittedAt)
		if err != nil {
			return fmt.Errorf("failed to import challenge score %d: %w", score.ID, err)
		}
	}

	log.Printf("Imported %d users, %d sessions, %d challenges, %d scores",
		len(data.Users), len(data.Sessions), len(data.Challenges), len(data.Scores))
	return nil
}

func (s *BackupService) exportUsers() ([]UserBackup, error) {
	rows, err := s.db.Query(`
		SELECT id, email, username, password_hash, COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''), created_at
		FROM users ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []UserBackup
	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.OAuthProvider, &u.OAuthSubject, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *BackupService) exportSessions() ([]GameSessionBackup, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, score, best_streak, correct_answers, total_questions, session_type, created_at
		FROM game_sessions ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []GameSessionBackup
	for rows.Next() {
		var g GameSessionBackup
		if err := rows.Scan(&g.ID, &g.UserID, &g.Score, &g.BestStreak, &g.CorrectAnswers, &g.TotalQuestions, &g.SessionType, &g.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, g)
	}
	return sessions, rows.Err()
}

func (s *BackupService) exportChallenges() ([]ChallengeBackup, error) {
	rows, err := s.db.Query(`
		SELECT id, creator_id, opponent_id, status, created_at, expires_at
		FROM challenges ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []ChallengeBackup
	for rows.Next() {
		var c ChallengeBackup
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

func (s *BackupService) exportScores() ([]ChallengeScoreBackup, error) {
	rows, err := s.db.Query(`
		SELECT id, challenge_id, user_id, score, correct_answers, total_questions, submitted_at
		FROM challenge_scores ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []ChallengeScoreBackup
	for rows.Next() {
		var cs ChallengeScoreBackup
		if err := rows.Scan(&cs.ID, &cs.ChallengeID, &cs.UserID, &cs.Score, &cs.CorrectAnswers, &cs.TotalQuestions, &cs.SubmittedAt); err != nil {
			return nil, err
		}
		scores = append(scores, cs)
	}
	return scores, rows.Err()
}
