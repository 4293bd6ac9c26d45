// Package notification delivers user-facing notices. The current transport
// logs the notice; the interface stays stable when a mail provider is wired.
package notification

import (
	"context"
	"fmt"
	"log"

	"givehub/internal/model"
)

// Service sends notifications to users.
type Service struct {
	baseURL string
}

// NewService creates a notification service. baseURL is the public site URL
// used to build links embedded in notices.
func NewService(baseURL string) *Service {
	return &Service{baseURL: baseURL}
}

// SendVerificationNotice re-sends the email verification link.
// TODO: deliver through a transactional email provider instead of the log.
func (s *Service) SendVerificationNotice(ctx context.Context, user *model.User) error {
	link := fmt.Sprintf("%s/verify-email/%s", s.baseURL, user.ID)
	log.Printf("INFO: verification notice for %s: %s", user.Email, link)
	return nil
}
