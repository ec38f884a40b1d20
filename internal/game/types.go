package game

import (
	"context"
	"math/rand"

	"chordcrack/internal/chords"
)

// State is the game manager's lifecycle state
type State string

const (
	StateWaiting  State = "waiting"
	StatePlaying  State = "playing"
	StateAnswered State = "answered"
	StateGameOver State = "gameOver"
)

// SessionType tags a finished session record
type SessionType string

const (
	SessionDailyChallenge  SessionType = "dailyChallenge"
	SessionSpeedRound      SessionType = "speedRound"
	SessionSocialChallenge SessionType = "socialChallenge"
	SessionPractice        SessionType = "practice"
)

// HintKind is the hint tier unlocked for an attempt
type HintKind string

const (
	HintFullChord     HintKind = "fullChord"     // attempts 1-2
	HintSlowChord     HintKind = "slowChord"     // attempt 3, arpeggiated
	HintSingleStrings HintKind = "singleStrings" // attempt 4
	HintJumbledFrets  HintKind = "jumbledFrets"  // attempt 5
	HintFingerReveal  HintKind = "fingerReveal"  // attempt 6
)

const (
	MaxAttempts = 6
	MaxRounds   = 5

	basePoints  = 60
	pointsStep  = 10
	floorPoints = 10

	jumbledHintAttempt = 5
	revealHintAttempt  = 6
)

// Points returns the score for a correct guess on the given attempt:
// 60 on attempt 1, dropping 10 per attempt, floored at 10.
func Points(attempt int) int {
	points := basePoints - (attempt-1)*pointsStep
	if points < floorPoints {
		return floorPoints
	}
	return points
}

// HintForAttempt returns the hint tier active at the given attempt
func HintForAttempt(attempt int) HintKind {
	switch {
	case attempt <= 2:
		return HintFullChord
	case attempt == 3:
		return HintSlowChord
	case attempt == 4:
		return HintSingleStrings
	case attempt == jumbledHintAttempt:
		return HintJumbledFrets
	default:
		return HintFingerReveal
	}
}

// Catalog supplies chord data to the manager
type Catalog interface {
	Lookup(id string) (chords.Chord, bool)
	RandomBasic(rng *rand.Rand) chords.Chord
}

// AudioService plays hint audio for the current attempt tier.
// Failures are the service's concern and never surface into game state.
type AudioService interface {
	PlayHint(chord chords.Chord, kind HintKind)
	ResetForNewAttempt()
}

// SessionRecorder persists a finalized session record
type SessionRecorder interface {
	RecordSession(ctx context.Context, result SessionResult) error
}

// ChallengeSubmitter reports a finished social-challenge score
type ChallengeSubmitter interface {
	SubmitChallengeScore(ctx context.Context, challengeID string, score, correctAnswers, totalQuestions int) (bool, error)
}

// SessionResult is the finalized tuple handed to the persistence collaborator
type SessionResult struct {
	Score          int         `json:"score"`
	BestStreak     int         `json:"bestStreak"`
	CorrectAnswers int         `json:"correctAnswers"`
	TotalQuestions int         `json:"totalQuestions"`
	SessionType    SessionType `json:"sessionType"`
}

// FingerReveal is the attempt-6 hint: one non-open position of the target chord
type FingerReveal struct {
	Index  int    `json:"index"`
	String string `json:"string"`
	Fret   int    `json:"fret"`
}

// Round holds the transient state of one chord-guessing round
type Round struct {
	Number         int
	Attempt        int
	Target         chords.Chord
	Guesses        [MaxAttempts]*string
	JumbledFrets   []int
	RevealedFinger int // index into Target.Positions, -1 until revealed
}

// Snapshot is a read-only view of the manager, safe to serialize
type Snapshot struct {
	State          State         `json:"state"`
	Round          int           `json:"round"`
	Attempt        int           `json:"attempt"`
	Score          int           `json:"score"`
	Streak         int           `json:"streak"`
	BestStreak     int           `json:"bestStreak"`
	CorrectAnswers int           `json:"correctAnswers"`
	TotalQuestions int           `json:"totalQuestions"`
	TotalGames     int           `json:"totalGames"`
	Hint           HintKind      `json:"hint,omitempty"`
	Guesses        []string      `json:"guesses"`
	JumbledFrets   []int         `json:"jumbledFrets,omitempty"`
	RevealedFinger *FingerReveal `json:"revealedFinger,omitempty"`
	TargetID       string        `json:"targetId,omitempty"`
}
