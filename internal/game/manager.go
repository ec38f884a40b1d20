package game

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"
)

const (
	defaultCorrectAdvanceDelay = 2 * time.Second
	defaultWrongAdvanceDelay   = 3 * time.Second

	collaboratorTimeout = 10 * time.Second
)

// Config wires a manager to its collaborators. Challenge identity lives here,
// per session, rather than in package state.
type Config struct {
	SessionType SessionType
	ChallengeID string // set when the session was started from a social challenge

	Catalog    Catalog
	Audio      AudioService
	Recorder   SessionRecorder
	Challenges ChallengeSubmitter

	CorrectAdvanceDelay time.Duration
	WrongAdvanceDelay   time.Duration

	// Rand defaults to a time-seeded source; tests pass a fixed seed
	Rand *rand.Rand
}

// Manager is the round/attempt state machine for one player's session.
// All mutations are serialized behind the mutex; the only concurrent entry
// point is the deferred round-advance timer.
type Manager struct {
	mu  sync.Mutex
	cfg Config
	rng *rand.Rand

	state State
	round *Round

	roundNum       int
	score          int
	streak         int
	bestStreak     int
	correctAnswers int
	totalQuestions int
	totalGames     int
	active         bool

	stats sessionStats

	// advanceGen invalidates pending timer advances: any newer round or game
	// bumps the generation, so a stale timer firing afterwards is ignored.
	advanceGen   uint64
	advanceTimer *time.Timer
}

// NewManager creates a manager in the waiting state
func NewManager(cfg Config) *Manager {
	if cfg.SessionType == "" {
		cfg.SessionType = SessionDailyChallenge
	}
	if cfg.CorrectAdvanceDelay == 0 {
		cfg.CorrectAdvanceDelay = defaultCorrectAdvanceDelay
	}
	if cfg.WrongAdvanceDelay == 0 {
		cfg.WrongAdvanceDelay = defaultWrongAdvanceDelay
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{
		cfg:   cfg,
		rng:   rng,
		state: StateWaiting,
	}
}

// StartNewGame resets all counters, marks the session active and starts round 1
func (m *Manager) StartNewGame() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelPendingAdvance()

	m.score = 0
	m.streak = 0
	m.bestStreak = 0
	m.correctAnswers = 0
	m.totalQuestions = 0
	m.active = true
	m.stats.reset()

	m.roundNum = 1
	m.startRound()
}

// SubmitGuess records a guess for the current attempt. Guesses outside the
// playing state, or past the attempt limit, are dropped without error.
func (m *Manager) SubmitGuess(chordID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StatePlaying || m.round == nil || m.round.Attempt > MaxAttempts {
		return
	}

	r := m.round
	guess := chordID
	r.Guesses[r.Attempt-1] = &guess

	if chordID == r.Target.ID {
		points := Points(r.Attempt)
		m.score += points
		m.streak++
		if m.streak > m.bestStreak {
			m.bestStreak = m.streak
		}
		m.correctAnswers++
		m.totalQuestions++
		m.stats.recordCorrect(points)
		m.resolveRound(m.cfg.CorrectAdvanceDelay)
		return
	}

	m.streak = 0
	m.stats.resetStreak()
	r.Attempt++

	switch r.Attempt {
	case jumbledHintAttempt:
		r.JumbledFrets = jumbleFrets(r.Target.Frets(), m.rng)
	case revealHintAttempt:
		if fretted := r.Target.FrettedIndexes(); len(fretted) > 0 {
			r.RevealedFinger = fretted[m.rng.Intn(len(fretted))]
		}
	}

	if r.Attempt > MaxAttempts {
		m.totalQuestions++
		m.stats.recordExhausted()
		m.resolveRound(m.cfg.WrongAdvanceDelay)
		return
	}

	m.playHint()
}

// NextRound advances to the next round immediately, or ends the game after
// the last one. Only valid from the answered state.
func (m *Manager) NextRound() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAnswered {
		return
	}
	m.cancelPendingAdvance()
	m.advanceLocked()
}

// EndGame finalizes the session from any state
func (m *Manager) EndGame() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateGameOver {
		return
	}
	m.cancelPendingAdvance()
	m.endGameLocked()
}

// Snapshot returns a read-only view of the current state. The target chord is
// only exposed once the round is resolved.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		State:          m.state,
		Round:          m.roundNum,
		Score:          m.score,
		Streak:         m.streak,
		BestStreak:     m.bestStreak,
		CorrectAnswers: m.correctAnswers,
		TotalQuestions: m.totalQuestions,
		TotalGames:     m.totalGames,
	}

	if m.round != nil {
		r := m.round
		snap.Attempt = r.Attempt
		if r.Attempt <= MaxAttempts {
			snap.Hint = HintForAttempt(r.Attempt)
		}
		for _, g := range r.Guesses {
			if g != nil {
				snap.Guesses = append(snap.Guesses, *g)
			}
		}
		if r.JumbledFrets != nil {
			snap.JumbledFrets = append([]int(nil), r.JumbledFrets...)
		}
		if r.RevealedFinger >= 0 {
			pos := r.Target.Positions[r.RevealedFinger]
			snap.RevealedFinger = &FingerReveal{
				Index:  r.RevealedFinger,
				String: pos.String,
				Fret:   pos.Fret,
			}
		}
		if m.state == StateAnswered || m.state == StateGameOver {
			snap.TargetID = r.Target.ID
		}
	}

	return snap
}

// Active reports whether a session is in progress
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// TotalGames reports the number of completed sessions
func (m *Manager) TotalGames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalGames
}

func (m *Manager) startRound() {
	m.round = &Round{
		Number:         m.roundNum,
		Attempt:        1,
		Target:         m.cfg.Catalog.RandomBasic(m.rng),
		RevealedFinger: -1,
	}
	m.state = StatePlaying
	m.playHint()
}

func (m *Manager) playHint() {
	if m.cfg.Audio == nil {
		return
	}
	m.cfg.Audio.ResetForNewAttempt()
	m.cfg.Audio.PlayHint(m.round.Target, HintForAttempt(m.round.Attempt))
}

// resolveRound moves to answered and schedules the deferred advance
func (m *Manager) resolveRound(delay time.Duration) {
	m.state = StateAnswered
	m.scheduleAdvance(delay)
}

func (m *Manager) scheduleAdvance(delay time.Duration) {
	m.advanceGen++
	gen := m.advanceGen
	m.advanceTimer = time.AfterFunc(delay, func() {
		m.timedAdvance(gen)
	})
}

// timedAdvance is the timer callback. A generation mismatch means a newer
// round or game superseded this timer, so it does nothing.
func (m *Manager) timedAdvance(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.advanceGen || m.state != StateAnswered {
		return
	}
	m.advanceLocked()
}

func (m *Manager) advanceLocked() {
	if m.roundNum >= MaxRounds {
		m.endGameLocked()
		return
	}
	m.roundNum++
	m.startRound()
}

func (m *Manager) cancelPendingAdvance() {
	m.advanceGen++
	if m.advanceTimer != nil {
		m.advanceTimer.Stop()
		m.advanceTimer = nil
	}
}

// endGameLocked finalizes the session. The persistence and challenge calls are
// fire-and-forget: the gameOver transition never waits on them, and their
// failures are logged, not surfaced.
func (m *Manager) endGameLocked() {
	m.state = StateGameOver
	m.active = false
	m.totalGames++

	result := m.finalize()
	recorder := m.cfg.Recorder
	challenges := m.cfg.Challenges
	challengeID := m.cfg.ChallengeID

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
		defer cancel()

		if recorder != nil {
			if err := recorder.RecordSession(ctx, result); err != nil {
				log.Printf("Failed to record session: %v", err)
			}
		}

		if challengeID != "" && challenges != nil {
			ok, err := challenges.SubmitChallengeScore(ctx, challengeID, result.Score, result.CorrectAnswers, result.TotalQuestions)
			if err != nil {
				log.Printf("Failed to submit challenge score for %s: %v", challengeID, err)
			} else if !ok {
				log.Printf("Challenge score for %s was rejected", challengeID)
			}
		}
	}()
}

// jumbleFrets returns a shuffled copy of the target's fret numbers
func jumbleFrets(frets []int, rng *rand.Rand) []int {
	jumbled := append([]int(nil), frets...)
	rng.Shuffle(len(jumbled), func(i, j int) {
		jumbled[i], jumbled[j] = jumbled[j], jumbled[i]
	})
	return jumbled
}
