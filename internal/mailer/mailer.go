package mailer

import (
	"fmt"

	"github.com/studypilot/server/internal/logger"
)

// Mailer delivers account emails (verification, password reset)
type Mailer interface {
	SendVerification(email, token string) error
	SendPasswordReset(email, token string) error
}

// LogMailer writes mail contents to the log instead of delivering
// them. Used in development and as the default until a real provider
// is configured.
type LogMailer struct {
	baseURL string
}

func NewLogMailer(baseURL string) *LogMailer {
	return &LogMailer{baseURL: baseURL}
}

func (m *LogMailer) SendVerification(email, token string) error {
	logger.Info("verification email",
		"to", email,
		"link", fmt.Sprintf("%s/verify-email?token=%s", m.baseURL, token),
	)
	return nil
}

func (m *LogMailer) SendPasswordReset(email, token string) error {
	logger.Info("password reset email",
		"to", email,
		"link", fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token),
	)
	return nil
}
