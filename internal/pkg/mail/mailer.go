package mail

import (
	"context"
	"log/slog"
)

// Mailer is the outbound boundary for transactional mail. Actual delivery is
// an external collaborator; the default implementation only logs.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, fullName, resetToken string) error
}

type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, toEmail, fullName, resetToken string) error {
	m.logger.Info("password reset mail requested",
		"to", toEmail,
		"full_name", fullName,
		"token_len", len(resetToken),
	)
	return nil
}
