package game

// sessionStats independently tracks the same counters as the manager's live
// fields. The two tallies are reconciled per-field at finalize time so a
// partial update on either side cannot drag the recorded result down.
type sessionStats struct {
	score          int
	streak         int
	bestStreak     int
	correctAnswers int
	totalQuestions int
}

func (s *sessionStats) reset() {
	*s = sessionStats{}
}

// recordCorrect tallies a round solved on the current attempt
func (s *sessionStats) recordCorrect(points int) {
	s.score += points
	s.streak++
	if s.streak > s.bestStreak {
		s.bestStreak = s.streak
	}
	s.correctAnswers++
	s.totalQuestions++
}

// recordExhausted tallies a round that ran out of attempts
func (s *sessionStats) recordExhausted() {
	s.streak = 0
	s.totalQuestions++
}

// resetStreak mirrors the live streak reset on an incorrect guess
func (s *sessionStats) resetStreak() {
	s.streak = 0
}

// finalize merges the live counters with the shadow tally, taking the maximum
// per field. A zero total is clamped to 1/1 so a degenerate session can never
// produce an invalid accuracy record downstream.
func (m *Manager) finalize() SessionResult {
	result := SessionResult{
		Score:          maxInt(m.score, m.stats.score),
		BestStreak:     maxInt(m.bestStreak, m.stats.bestStreak),
		CorrectAnswers: maxInt(m.correctAnswers, m.stats.correctAnswers),
		TotalQuestions: maxInt(m.totalQuestions, m.stats.totalQuestions),
		SessionType:    m.cfg.SessionType,
	}
	if result.TotalQuestions == 0 {
		result.TotalQuestions = 1
		result.CorrectAnswers = 1
	}
	return result
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
