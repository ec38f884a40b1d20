package service

import (
	"errors"
	"testing"

	"chordcrack/internal/game"
)

func TestValidateResult(t *testing.T) {
	valid := game.SessionResult{
		Score:          180,
		BestStreak:     3,
		CorrectAnswers: 3,
		TotalQuestions: 5,
		SessionType:    game.SessionDailyChallenge,
	}

	tests := []struct {
		name    string
		mutate  func(r *game.SessionResult)
		wantErr bool
	}{
		{
			name:    "valid result",
			mutate:  func(r *game.SessionResult) {},
			wantErr: false,
		},
		{
			name:    "perfect game",
			mutate:  func(r *game.SessionResult) { r.Score = 300; r.CorrectAnswers = 5; r.BestStreak = 5 },
			wantErr: false,
		},
		{
			name:    "clamped degenerate result",
			mutate:  func(r *game.SessionResult) { r.Score = 0; r.BestStreak = 0; r.CorrectAnswers = 0; r.TotalQuestions = 1 },
			wantErr: false,
		},
		{
			name:    "negative score",
			mutate:  func(r *game.SessionResult) { r.Score = -1 },
			wantErr: true,
		},
		{
			name:    "negative streak",
			mutate:  func(r *game.SessionResult) { r.BestStreak = -1 },
			wantErr: true,
		},
		{
			name:    "zero questions",
			mutate:  func(r *game.SessionResult) { r.TotalQuestions = 0 },
			wantErr: true,
		},
		{
			name:    "correct exceeds total",
			mutate:  func(r *game.SessionResult) { r.CorrectAnswers = 6 },
			wantErr: true,
		},
		{
			name:    "too many questions",
			mutate:  func(r *game.SessionResult) { r.TotalQuestions = game.MaxRounds + 1; r.CorrectAnswers = 0 },
			wantErr: true,
		},
		{
			name:    "score above maximum",
			mutate:  func(r *game.SessionResult) { r.Score = game.MaxRounds*game.Points(1) + 1 },
			wantErr: true,
		},
		{
			name:    "unknown session type",
			mutate:  func(r *game.SessionResult) { r.SessionType = "arcade" },
			wantErr: true,
		},
		{
			name:    "speed round accepted",
			mutate:  func(r *game.SessionResult) { r.SessionType = game.SessionSpeedRound },
			wantErr: false,
		},
		{
			name:    "practice accepted",
			mutate:  func(r *game.SessionResult) { r.SessionType = game.SessionPractice },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := valid
			tt.mutate(&result)

			err := validateResult(result)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateResult() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSessionResult) {
				t.Errorf("expected ErrInvalidSessionResult, got %v", err)
			}
		})
	}
}
