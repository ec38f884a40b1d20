package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"chordcrack/internal/models"
	"chordcrack/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// ExportBundle is the GDPR data export handed to a user: everything the
// backend stores about them, in one JSON document.
type ExportBundle struct {
	ExportedAt time.Time            `json:"exportedAt"`
	User       models.User          `json:"user"`
	Stats      models.PlayerStats   `json:"stats"`
	Sessions   []models.GameSession `json:"sessions"`
	Challenges []models.Challenge   `json:"challenges"`
}

// AccountService handles GDPR export and deletion flows
type AccountService struct {
	userRepo      *repository.UserRepository
	gameRepo      *repository.GameRepository
	challengeRepo *repository.ChallengeRepository
	emailService  *EmailService
}

// NewAccountService creates a new account service
func NewAccountService(userRepo *repository.UserRepository, gameRepo *repository.GameRepository, challengeRepo *repository.ChallengeRepository, emailService *EmailService) *AccountService {
	return &AccountService{
		userRepo:      userRepo,
		gameRepo:      gameRepo,
		challengeRepo: challengeRepo,
		emailService:  emailService,
	}
}

// ExportData collects everything stored for a user
func (s *AccountService) ExportData(userID int64) (*ExportBundle, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := s.gameRepo.GetPlayerStats(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	// The whole session history belongs in the export, not just a page
	sessions, err := s.gameRepo.GetUserSessions(userID, 1_000_000)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	challenges, err := s.challengeRepo.GetUserChallenges(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenges: %w", err)
	}

	return &ExportBundle{
		ExportedAt: time.Now(),
		User:       *user,
		Stats:      *stats,
		Sessions:   sessions,
		Challenges: challenges,
	}, nil
}

// DeleteAccount permanently removes a user and all dependent data. The
// confirmation email is best effort and sent after the data is gone.
func (s *AccountService) DeleteAccount(userID int64) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.challengeRepo.DeleteUserChallengeScores(userID); err != nil {
		return fmt.Errorf("failed to delete challenge scores: %w", err)
	}
	if err := s.gameRepo.DeleteUserSessions(userID); err != nil {
		return fmt.Errorf("failed to delete game sessions: %w", err)
	}
	if err := s.userRepo.DeleteUserSessions(userID); err != nil {
		return fmt.Errorf("failed to delete auth sessions: %w", err)
	}
	if err := s.userRepo.DeleteUser(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Printf("Deleted account %d (%s)", userID, user.Username)

	if s.emailService != nil {
		if err := s.emailService.SendAccountDeletionNotice(user.Email, user.Username); err != nil {
			log.Printf("Failed to send deletion notice to user %d: %v", userID, err)
		}
	}

	return nil
}
