package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends transactional email via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service. With no from-address configured
// the service is disabled and every send becomes a logged no-op.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// SendChallengeInvite emails a challenge link to an invited opponent
func (s *EmailService) SendChallengeInvite(toEmail, inviterName, challengeID string) error {
	subject := fmt.Sprintf("%s challenged you on ChordCrack", inviterName)
	body := fmt.Sprintf(
		"%s thinks they have a better ear than you.\n\n"+
			"Open the challenge in the app, or follow this link:\n%s/challenge/%s\n\n"+
			"The challenge expires in 7 days.\n",
		inviterName, s.appBaseURL, challengeID)
	return s.send(toEmail, subject, body)
}

// SendAccountDeletionNotice confirms to a user that their data was removed
func (s *EmailService) SendAccountDeletionNotice(toEmail, username string) error {
	subject := "Your ChordCrack account has been deleted"
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your ChordCrack account and all associated game data have been permanently deleted.\n"+
			"If you did not request this, contact support immediately.\n",
		username)
	return s.send(toEmail, subject, body)
}

func (s *EmailService) send(toEmail, subject, body string) error {
	if !s.enabled {
		log.Printf("Email service disabled, skipping email to %s: %s", toEmail, subject)
		return nil
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
