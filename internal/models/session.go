package models

import "time"

// GameSession is one finished game in the append-only session log
type GameSession struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Score          int       `json:"score"`
	BestStreak     int       `json:"bestStreak"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	SessionType    string    `json:"sessionType"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PlayerStats aggregates a player's recorded sessions
type PlayerStats struct {
	TotalGames     int     `json:"totalGames"`
	TotalScore     int     `json:"totalScore"`
	BestScore      int     `json:"bestScore"`
	BestStreak     int     `json:"bestStreak"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalQuestions int     `json:"totalQuestions"`
	Accuracy       float64 `json:"accuracy"`
}

// LeaderboardEntry is one row of the score leaderboard
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	BestScore   int    `json:"bestScore"`
	TotalScore  int    `json:"totalScore"`
	GamesPlayed int    `json:"gamesPlayed"`
}
