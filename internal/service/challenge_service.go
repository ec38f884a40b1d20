package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"chordcrack/internal/models"
	"chordcrack/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrChallengeClosed     = errors.New("challenge is no longer open")
	ErrNotParticipant      = errors.New("user is not part of this challenge")
	ErrAlreadySubmitted    = errors.New("score already submitted")
	ErrCannotChallengeSelf = errors.New("cannot accept your own challenge")
)

const challengeTTL = 7 * 24 * time.Hour

// ChallengeView is a challenge with its submitted scores
type ChallengeView struct {
	Challenge models.Challenge        `json:"challenge"`
	Scores    []models.ChallengeScore `json:"scores"`
}

// ChallengeService handles head-to-head score challenges
type ChallengeService struct {
	challengeRepo *repository.ChallengeRepository
	userRepo      *repository.UserRepository
	emailService  *EmailService
}

// NewChallengeService creates a new challenge service
func NewChallengeService(challengeRepo *repository.ChallengeRepository, userRepo *repository.UserRepository, emailService *EmailService) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		emailService:  emailService,
	}
}

// CreateChallenge opens a new challenge and optionally emails an invite
func (s *ChallengeService) CreateChallenge(creatorID int64, opponentEmail string) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.CreateChallenge(uuid.New().String(), creatorID, time.Now().Add(challengeTTL))
	if err != nil {
		return nil, err
	}

	if opponentEmail != "" && s.emailService != nil {
		creator, err := s.userRepo.GetUserByID(creatorID)
		if err == nil && creator != nil {
			// Invite delivery is best effort
			if err := s.emailService.SendChallengeInvite(opponentEmail, creator.Username, challenge.ID); err != nil {
				log.Printf("Failed to send challenge invite for %s: %v", challenge.ID, err)
			}
		}
	}

	return challenge, nil
}

// AcceptChallenge attaches a user as the challenge opponent
func (s *ChallengeService) AcceptChallenge(challengeID string, userID int64) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}
	if challenge.CreatorID == userID {
		return nil, ErrCannotChallengeSelf
	}
	if challenge.Status != models.ChallengeStatusPending || time.Now().After(challenge.ExpiresAt) {
		return nil, ErrChallengeClosed
	}

	if err := s.challengeRepo.AcceptChallenge(challengeID, userID); err != nil {
		return nil, err
	}
	return s.challengeRepo.GetChallenge(challengeID)
}

// SubmitScore records a participant's result. Once both sides have submitted,
// the challenge is marked completed. Returns false when the submission was
// rejected rather than failed.
func (s *ChallengeService) SubmitScore(challengeID string, userID int64, score, correctAnswers, totalQuestions int) (bool, error) {
	challenge, err := s.challengeRepo.GetChallenge(challengeID)
	if err != nil {
		return false, err
	}
	if challenge == nil {
		return false, ErrChallengeNotFound
	}
	if challenge.Status == models.ChallengeStatusCompleted || challenge.Status == models.ChallengeStatusExpired {
		return false, nil
	}
	if !s.isParticipant(challenge, userID) {
		return false, ErrNotParticipant
	}

	scores, err := s.challengeRepo.GetScores(challengeID)
	if err != nil {
		return false, err
	}
	for _, existing := range scores {
		if existing.UserID == userID {
			return false, nil
		}
	}

	if _, err := s.challengeRepo.RecordScore(challengeID, userID, score, correctAnswers, totalQuestions); err != nil {
		return false, err
	}

	// Both participants submitted: close it out
	if challenge.OpponentID != nil && len(scores)+1 >= 2 {
		if err := s.challengeRepo.SetStatus(challengeID, models.ChallengeStatusCompleted); err != nil {
			log.Printf("Failed to complete challenge %s: %v", challengeID, err)
		}
	}

	return true, nil
}

// GetChallenge returns a challenge with its scores, visible to participants only
func (s *ChallengeService) GetChallenge(challengeID string, userID int64) (*ChallengeView, error) {
	challenge, err := s.challengeRepo.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}
	if !s.isParticipant(challenge, userID) {
		return nil, ErrNotParticipant
	}

	scores, err := s.challengeRepo.GetScores(challengeID)
	if err != nil {
		return nil, err
	}
	return &ChallengeView{Challenge: *challenge, Scores: scores}, nil
}

// GetUserChallenges lists challenges the user participates in
func (s *ChallengeService) GetUserChallenges(userID int64) ([]models.Challenge, error) {
	return s.challengeRepo.GetUserChallenges(userID)
}

// CanPlay reports whether a user may start a game against the challenge
func (s *ChallengeService) CanPlay(challengeID string, userID int64) error {
	challenge, err := s.challengeRepo.GetChallenge(challengeID)
	if err != nil {
		return err
	}
	if challenge == nil {
		return ErrChallengeNotFound
	}
	if !s.isParticipant(challenge, userID) {
		return ErrNotParticipant
	}
	if challenge.Status == models.ChallengeStatusCompleted || challenge.Status == models.ChallengeStatusExpired {
		return ErrChallengeClosed
	}
	if time.Now().After(challenge.ExpiresAt) {
		return ErrChallengeClosed
	}
	return nil
}

// ExpireOldChallenges marks overdue challenges expired
func (s *ChallengeService) ExpireOldChallenges() error {
	count, err := s.challengeRepo.ExpireOldChallenges()
	if err != nil {
		return fmt.Errorf("failed to expire challenges: %w", err)
	}
	if count > 0 {
		log.Printf("Expired %d stale challenges", count)
	}
	return nil
}

func (s *ChallengeService) isParticipant(challenge *models.Challenge, userID int64) bool {
	if challenge.CreatorID == userID {
		return true
	}
	return challenge.OpponentID != nil && *challenge.OpponentID == userID
}
