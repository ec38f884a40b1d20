package models

import "time"

// Challenge statuses
const (
	ChallengeStatusPending   = "pending"
	ChallengeStatusAccepted  = "accepted"
	ChallengeStatusCompleted = "completed"
	ChallengeStatusExpired   = "expired"
)

// Challenge is a head-to-head score challenge between two players
type Challenge struct {
	ID         string    `json:"id"`
	CreatorID  int64     `json:"creatorId"`
	OpponentID *int64    `json:"opponentId,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// ChallengeScore is one player's submitted result for a challenge
type ChallengeScore struct {
	ID             int64     `json:"id"`
	ChallengeID    string    `json:"challengeId"`
	UserID         int64     `json:"userId"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
