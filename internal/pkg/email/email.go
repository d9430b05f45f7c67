package email

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/csaops/shrinkage-backend-go/internal/config"
)

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendCSVReport(to, subject, body, filename string, csv []byte) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

// SendCSVReport sends a plain-text email with one CSV file attached.
func (s *emailServiceImpl) SendCSVReport(to, subject, body, filename string, csv []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	boundary := fmt.Sprintf("csaops-%d", time.Now().UnixNano())

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n", boundary)
	headers += "\r\n"

	message := headers
	message += fmt.Sprintf("--%s\r\n", boundary)
	message += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	message += "\r\n"
	message += body + "\r\n"
	message += fmt.Sprintf("--%s\r\n", boundary)
	message += fmt.Sprintf("Content-Type: text/csv; name=\"%s\"\r\n", filename)
	message += "Content-Transfer-Encoding: base64\r\n"
	message += fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n", filename)
	message += "\r\n"
	message += base64.StdEncoding.EncodeToString(csv) + "\r\n"
	message += fmt.Sprintf("--%s--\r\n", boundary)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(message))
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
