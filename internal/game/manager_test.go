package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"chordcrack/internal/chords"
)

// recordingCatalog wraps the real table and remembers every draw
type recordingCatalog struct {
	table *chords.Table
	drawn []chords.Chord
}

func (c *recordingCatalog) Lookup(id string) (chords.Chord, bool) {
	return c.table.Lookup(id)
}

func (c *recordingCatalog) RandomBasic(rng *rand.Rand) chords.Chord {
	chord := c.table.RandomBasic(rng)
	c.drawn = append(c.drawn, chord)
	return chord
}

type fakeRecorder struct {
	results chan SessionResult
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{results: make(chan SessionResult, 4)}
}

func (r *fakeRecorder) RecordSession(ctx context.Context, result SessionResult) error {
	r.results <- result
	return nil
}

func (r *fakeRecorder) wait(t *testing.T) SessionResult {
	t.Helper()
	select {
	case result := <-r.results:
		return result
	case <-time.After(2 * time.Second):
		t.Fatal("no session recorded")
		return SessionResult{}
	}
}

type fakeChallenges struct {
	submissions chan string
}

func (c *fakeChallenges) SubmitChallengeScore(ctx context.Context, challengeID string, score, correctAnswers, totalQuestions int) (bool, error) {
	c.submissions <- challengeID
	return true, nil
}

func newTestManager(cfg Config) (*Manager, *recordingCatalog) {
	catalog := &recordingCatalog{table: chords.Default()}
	cfg.Catalog = catalog
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(42))
	}
	if cfg.CorrectAdvanceDelay == 0 {
		cfg.CorrectAdvanceDelay = time.Hour
	}
	if cfg.WrongAdvanceDelay == 0 {
		cfg.WrongAdvanceDelay = time.Hour
	}
	return NewManager(cfg), catalog
}

// currentTarget peeks at the live round's target
func currentTarget(m *Manager) chords.Chord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.round.Target
}

// wrongGuess submits a guess guaranteed not to match the target
func wrongGuess(m *Manager) {
	target := currentTarget(m)
	guess := "A"
	if target.ID == "A" {
		guess = "B"
	}
	m.SubmitGuess(guess)
}

func TestPoints(t *testing.T) {
	tests := []struct {
		attempt int
		want    int
	}{
		{1, 60},
		{2, 50},
		{3, 40},
		{4, 30},
		{5, 20},
		{6, 10},
	}

	for _, tt := range tests {
		if got := Points(tt.attempt); got != tt.want {
			t.Errorf("Points(%d) = %d, want %d", tt.attempt, got, tt.want)
		}
	}

	// Strictly decreasing until the floor
	for a := 2; a <= MaxAttempts; a++ {
		if Points(a) >= Points(a-1) {
			t.Errorf("Points(%d) = %d not below Points(%d) = %d", a, Points(a), a-1, Points(a-1))
		}
	}
}

func TestHintForAttempt(t *testing.T) {
	tests := []struct {
		attempt int
		want    HintKind
	}{
		{1, HintFullChord},
		{2, HintFullChord},
		{3, HintSlowChord},
		{4, HintSingleStrings},
		{5, HintJumbledFrets},
		{6, HintFingerReveal},
	}

	for _, tt := range tests {
		if got := HintForAttempt(tt.attempt); got != tt.want {
			t.Errorf("HintForAttempt(%d) = %s, want %s", tt.attempt, got, tt.want)
		}
	}
}

func TestCorrectGuessFirstAttempt(t *testing.T) {
	m, _ := newTestManager(Config{})
	m.StartNewGame()

	target := currentTarget(m)
	m.SubmitGuess(target.ID)

	snap := m.Snapshot()
	if snap.State != StateAnswered {
		t.Errorf("state = %s, want %s", snap.State, StateAnswered)
	}
	if snap.Score != 60 {
		t.Errorf("score = %d, want 60", snap.Score)
	}
	if snap.Streak != 1 {
		t.Errorf("streak = %d, want 1", snap.Streak)
	}
	if snap.CorrectAnswers != 1 || snap.TotalQuestions != 1 {
		t.Errorf("counters = %d/%d, want 1/1", snap.CorrectAnswers, snap.TotalQuestions)
	}
	if snap.TargetID != target.ID {
		t.Errorf("resolved round should expose target, got %q", snap.TargetID)
	}
}

func TestSixIncorrectGuesses(t *testing.T) {
	m, _ := newTestManager(Config{})
	m.StartNewGame()

	// Four wrong guesses bring the attempt counter to 5: jumbled frets appear
	for i := 0; i < 4; i++ {
		wrongGuess(m)
	}
	snap := m.Snapshot()
	if snap.Attempt != 5 {
		t.Fatalf("attempt = %d, want 5", snap.Attempt)
	}
	if len(snap.JumbledFrets) != len(currentTarget(m).Frets()) {
		t.Errorf("jumbled frets length = %d, want %d", len(snap.JumbledFrets), len(currentTarget(m).Frets()))
	}
	if snap.RevealedFinger != nil {
		t.Error("finger reveal generated too early")
	}

	// Fifth wrong guess: attempt 6, single finger revealed
	wrongGuess(m)
	snap = m.Snapshot()
	if snap.Attempt != 6 {
		t.Fatalf("attempt = %d, want 6", snap.Attempt)
	}
	if snap.RevealedFinger == nil {
		t.Fatal("finger reveal missing at attempt 6")
	}
	if snap.RevealedFinger.Fret <= 0 {
		t.Errorf("revealed finger fret = %d, want > 0", snap.RevealedFinger.Fret)
	}

	// Sixth wrong guess exhausts the round
	wrongGuess(m)
	snap = m.Snapshot()
	if snap.State != StateAnswered {
		t.Errorf("state = %s, want %s", snap.State, StateAnswered)
	}
	if snap.Attempt != 7 {
		t.Errorf("attempt = %d, want 7", snap.Attempt)
	}
	if snap.Score != 0 || snap.CorrectAnswers != 0 {
		t.Errorf("score/correct = %d/%d, want 0/0", snap.Score, snap.CorrectAnswers)
	}
	if snap.TotalQuestions != 1 {
		t.Errorf("totalQuestions = %d, want 1", snap.TotalQuestions)
	}
	if len(snap.Guesses) != 6 {
		t.Errorf("recorded guesses = %d, want 6", len(snap.Guesses))
	}
}

func TestGuessIgnoredOutsidePlaying(t *testing.T) {
	m, _ := newTestManager(Config{})

	// Waiting: no round yet
	m.SubmitGuess("A")
	if snap := m.Snapshot(); snap.State != StateWaiting || snap.Score != 0 {
		t.Errorf("guess in waiting state mutated manager: %+v", snap)
	}

	m.StartNewGame()
	target := currentTarget(m)
	m.SubmitGuess(target.ID)

	before := m.Snapshot()
	m.SubmitGuess(target.ID)
	after := m.Snapshot()

	if after.Score != before.Score || after.Attempt != before.Attempt || len(after.Guesses) != len(before.Guesses) {
		t.Errorf("guess in answered state mutated manager: before %+v after %+v", before, after)
	}
}

func TestStreakResetOnWrongGuess(t *testing.T) {
	m, _ := newTestManager(Config{})
	m.StartNewGame()

	m.SubmitGuess(currentTarget(m).ID)
	m.NextRound()

	wrongGuess(m)
	snap := m.Snapshot()
	if snap.Streak != 0 {
		t.Errorf("streak = %d after wrong guess, want 0", snap.Streak)
	}
	if snap.BestStreak != 1 {
		t.Errorf("bestStreak = %d, want 1", snap.BestStreak)
	}
}

func TestTargetAlwaysBasic(t *testing.T) {
	m, catalog := newTestManager(Config{})
	for i := 0; i < 1000; i++ {
		m.StartNewGame()
	}

	if len(catalog.drawn) != 1000 {
		t.Fatalf("draws = %d, want 1000", len(catalog.drawn))
	}
	for _, chord := range catalog.drawn {
		if chord.Category != chords.CategoryBasic {
			t.Fatalf("drew non-basic chord %s (%s)", chord.ID, chord.Category)
		}
	}
}

func TestFullGameFiveRounds(t *testing.T) {
	recorder := newFakeRecorder()
	m, _ := newTestManager(Config{Recorder: recorder})
	m.StartNewGame()

	for round := 1; round <= MaxRounds; round++ {
		snap := m.Snapshot()
		if snap.Round != round {
			t.Fatalf("round = %d, want %d", snap.Round, round)
		}
		m.SubmitGuess(currentTarget(m).ID)
		m.NextRound()
	}

	snap := m.Snapshot()
	if snap.State != StateGameOver {
		t.Fatalf("state = %s, want %s", snap.State, StateGameOver)
	}
	if snap.TotalGames != 1 {
		t.Errorf("totalGames = %d, want 1", snap.TotalGames)
	}
	if m.Active() {
		t.Error("session still active after game over")
	}

	result := recorder.wait(t)
	if result.Score != 5*60 {
		t.Errorf("recorded score = %d, want %d", result.Score, 5*60)
	}
	if result.BestStreak != 5 {
		t.Errorf("recorded bestStreak = %d, want 5", result.BestStreak)
	}
	if result.CorrectAnswers != 5 || result.TotalQuestions != 5 {
		t.Errorf("recorded counters = %d/%d, want 5/5", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.SessionType != SessionDailyChallenge {
		t.Errorf("sessionType = %s, want %s", result.SessionType, SessionDailyChallenge)
	}
}

func TestChallengeSubmission(t *testing.T) {
	recorder := newFakeRecorder()
	challenges := &fakeChallenges{submissions: make(chan string, 1)}
	m, _ := newTestManager(Config{
		SessionType: SessionSocialChallenge,
		ChallengeID: "challenge-123",
		Recorder:    recorder,
		Challenges:  challenges,
	})
	m.StartNewGame()
	m.EndGame()

	recorder.wait(t)
	select {
	case id := <-challenges.submissions:
		if id != "challenge-123" {
			t.Errorf("submitted challenge id = %s, want challenge-123", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("challenge score never submitted")
	}
}

func TestReconciliationTakesPerFieldMax(t *testing.T) {
	tests := []struct {
		name  string
		live  sessionStats
		shadow sessionStats
		want  SessionResult
	}{
		{
			name:   "shadow ahead of live",
			live:   sessionStats{score: 100, bestStreak: 2, correctAnswers: 2, totalQuestions: 4},
			shadow: sessionStats{score: 160, bestStreak: 3, correctAnswers: 3, totalQuestions: 5},
			want:   SessionResult{Score: 160, BestStreak: 3, CorrectAnswers: 3, TotalQuestions: 5},
		},
		{
			name:   "live ahead of shadow",
			live:   sessionStats{score: 220, bestStreak: 4, correctAnswers: 4, totalQuestions: 5},
			shadow: sessionStats{score: 160, bestStreak: 3, correctAnswers: 3, totalQuestions: 4},
			want:   SessionResult{Score: 220, BestStreak: 4, CorrectAnswers: 4, TotalQuestions: 5},
		},
		{
			name:   "mixed drift resolves per field",
			live:   sessionStats{score: 220, bestStreak: 2, correctAnswers: 4, totalQuestions: 4},
			shadow: sessionStats{score: 160, bestStreak: 3, correctAnswers: 3, totalQuestions: 5},
			want:   SessionResult{Score: 220, BestStreak: 3, CorrectAnswers: 4, TotalQuestions: 5},
		},
		{
			name:   "degenerate session clamps to one of one",
			live:   sessionStats{},
			shadow: sessionStats{},
			want:   SessionResult{Score: 0, BestStreak: 0, CorrectAnswers: 1, TotalQuestions: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(Config{})
			m.score = tt.live.score
			m.bestStreak = tt.live.bestStreak
			m.correctAnswers = tt.live.correctAnswers
			m.totalQuestions = tt.live.totalQuestions
			m.stats = tt.shadow

			got := m.finalize()
			got.SessionType = ""
			if got != tt.want {
				t.Errorf("finalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDegenerateSessionRecordsClampedResult(t *testing.T) {
	recorder := newFakeRecorder()
	m, _ := newTestManager(Config{Recorder: recorder})
	m.StartNewGame()
	m.EndGame()

	result := recorder.wait(t)
	if result.TotalQuestions != 1 || result.CorrectAnswers != 1 {
		t.Errorf("clamped result = %d/%d, want 1/1", result.CorrectAnswers, result.TotalQuestions)
	}
}

func TestStaleAdvanceTimerIgnored(t *testing.T) {
	m, _ := newTestManager(Config{
		CorrectAdvanceDelay: 20 * time.Millisecond,
		WrongAdvanceDelay:   20 * time.Millisecond,
	})
	m.StartNewGame()
	m.SubmitGuess(currentTarget(m).ID)

	// A new game supersedes the pending advance before it fires
	m.StartNewGame()
	time.Sleep(100 * time.Millisecond)

	snap := m.Snapshot()
	if snap.Round != 1 {
		t.Errorf("stale timer advanced a fresh game: round = %d, want 1", snap.Round)
	}
	if snap.State != StatePlaying {
		t.Errorf("state = %s, want %s", snap.State, StatePlaying)
	}
}

func TestDeferredAdvanceFires(t *testing.T) {
	m, _ := newTestManager(Config{
		CorrectAdvanceDelay: 10 * time.Millisecond,
		WrongAdvanceDelay:   10 * time.Millisecond,
	})
	m.StartNewGame()
	m.SubmitGuess(currentTarget(m).ID)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap := m.Snapshot()
		if snap.State == StatePlaying && snap.Round == 2 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("round never advanced, state = %s round = %d", m.Snapshot().State, m.Snapshot().Round)
}

func TestJumbledFretsArePermutation(t *testing.T) {
	m, _ := newTestManager(Config{})
	m.StartNewGame()

	for i := 0; i < 4; i++ {
		wrongGuess(m)
	}

	target := currentTarget(m)
	snap := m.Snapshot()

	counts := make(map[int]int)
	for _, f := range target.Frets() {
		counts[f]++
	}
	for _, f := range snap.JumbledFrets {
		counts[f]--
	}
	for fret, n := range counts {
		if n != 0 {
			t.Errorf("jumbled frets are not a permutation: fret %d off by %d", fret, n)
		}
	}
}
