package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"chordcrack/internal/audio"
	"chordcrack/internal/chords"
	"chordcrack/internal/game"
)

var (
	ErrNoActiveGame = errors.New("no active game")
	ErrUnknownChord = errors.New("unknown chord")
)

const liveGameIdleTimeout = 30 * time.Minute

// PlayView is the play-state payload returned to the client: the manager
// snapshot plus the audio clip for the current hint tier.
type PlayView struct {
	game.Snapshot
	AudioAsset string `json:"audioAsset,omitempty"`
}

// liveGame is one user's in-progress server-driven session
type liveGame struct {
	manager    *game.Manager
	audio      *hintAudio
	lastActive time.Time
}

// hintAudio implements game.AudioService for server-driven play: instead of
// playing a clip it tracks which asset the client should fetch next.
type hintAudio struct {
	library *audio.Library

	mu      sync.Mutex
	current string
}

func (a *hintAudio) PlayHint(chord chords.Chord, kind game.HintKind) {
	key := a.library.AssetKey(chord, kind)
	a.mu.Lock()
	a.current = key
	a.mu.Unlock()
}

func (a *hintAudio) ResetForNewAttempt() {
	a.mu.Lock()
	a.current = ""
	a.mu.Unlock()
}

func (a *hintAudio) currentAsset() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// boundRecorder binds the shared game service to one user for the manager's
// persistence collaborator
type boundRecorder struct {
	games  *GameService
	userID int64
}

func (r boundRecorder) RecordSession(ctx context.Context, result game.SessionResult) error {
	_, err := r.games.RecordResult(r.userID, result)
	return err
}

// boundSubmitter binds the challenge service to one user
type boundSubmitter struct {
	challenges *ChallengeService
	userID     int64
}

func (b boundSubmitter) SubmitChallengeScore(ctx context.Context, challengeID string, score, correctAnswers, totalQuestions int) (bool, error) {
	return b.challenges.SubmitScore(challengeID, b.userID, score, correctAnswers, totalQuestions)
}

// PlayService hosts one live game manager per signed-in user
type PlayService struct {
	catalog    *chords.Table
	library    *audio.Library
	games      *GameService
	challenges *ChallengeService

	mu   sync.Mutex
	live map[int64]*liveGame
}

// NewPlayService creates a new play service
func NewPlayService(catalog *chords.Table, library *audio.Library, games *GameService, challenges *ChallengeService) *PlayService {
	return &PlayService{
		catalog:    catalog,
		library:    library,
		games:      games,
		challenges: challenges,
		live:       make(map[int64]*liveGame),
	}
}

// Start begins a new game for a user, replacing any game in progress.
// A challenge ID requires the user to be an eligible participant.
func (s *PlayService) Start(userID int64, sessionType game.SessionType, challengeID string) (*PlayView, error) {
	if challengeID != "" {
		if err := s.challenges.CanPlay(challengeID, userID); err != nil {
			return nil, err
		}
		sessionType = game.SessionSocialChallenge
	}
	if sessionType == "" {
		sessionType = game.SessionDailyChallenge
	}

	hints := &hintAudio{library: s.library}
	manager := game.NewManager(game.Config{
		SessionType: sessionType,
		ChallengeID: challengeID,
		Catalog:     s.catalog,
		Audio:       hints,
		Recorder:    boundRecorder{games: s.games, userID: userID},
		Challenges:  boundSubmitter{challenges: s.challenges, userID: userID},
	})
	manager.StartNewGame()

	lg := &liveGame{manager: manager, audio: hints, lastActive: time.Now()}

	s.mu.Lock()
	s.live[userID] = lg
	s.mu.Unlock()

	return s.view(lg), nil
}

// Guess submits a chord guess for the user's live game
func (s *PlayService) Guess(userID int64, chordID string) (*PlayView, error) {
	if _, ok := s.catalog.Lookup(chordID); !ok {
		return nil, ErrUnknownChord
	}

	lg, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	lg.manager.SubmitGuess(chordID)
	return s.view(lg), nil
}

// State returns the user's current play state
func (s *PlayService) State(userID int64) (*PlayView, error) {
	lg, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	return s.view(lg), nil
}

// Advance skips the round-advance delay, moving on immediately
func (s *PlayService) Advance(userID int64) (*PlayView, error) {
	lg, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	lg.manager.NextRound()
	return s.view(lg), nil
}

// Quit finalizes the user's live game early and drops it
func (s *PlayService) Quit(userID int64) error {
	s.mu.Lock()
	lg, ok := s.live[userID]
	delete(s.live, userID)
	s.mu.Unlock()

	if !ok {
		return ErrNoActiveGame
	}
	lg.manager.EndGame()
	return nil
}

// CleanupIdle drops live games untouched for longer than the idle timeout.
// Abandoned games are not finalized: an unfinished session never reaches the log.
func (s *PlayService) CleanupIdle() {
	cutoff := time.Now().Add(-liveGameIdleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, lg := range s.live {
		if lg.lastActive.Before(cutoff) {
			delete(s.live, userID)
			log.Printf("Dropped idle game for user %d", userID)
		}
	}
}

func (s *PlayService) get(userID int64) (*liveGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lg, ok := s.live[userID]
	if !ok {
		return nil, ErrNoActiveGame
	}
	lg.lastActive = time.Now()
	return lg, nil
}

func (s *PlayService) view(lg *liveGame) *PlayView {
	return &PlayView{
		Snapshot:   lg.manager.Snapshot(),
		AudioAsset: lg.audio.currentAsset(),
	}
}
