// internal/pkg/email/service.go
package email

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/alcho-id/alcho-backend/internal/config"
)

// Sender delivers back-office mail. The only message the system sends
// today is the device verification code.
type Sender interface {
	SendDeviceOTP(to, code string) error
}

// Service sends mail over plain SMTP
type Service struct {
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

// SendDeviceOTP emails a verification code for a sign-in from an
// unrecognized device.
func (s *Service) SendDeviceOTP(to, code string) error {
	subject := "Kode verifikasi perangkat baru"
	body := fmt.Sprintf(
		"Kode verifikasi Anda: %s\r\n\r\nKode berlaku %d menit. Abaikan email ini jika Anda tidak mencoba masuk.\r\n",
		code, int(s.config.Security.OTPExpiry.Minutes()),
	)
	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, body string) error {
	cfg := s.config.Email
	if cfg.SMTPHost == "" {
		// Local development without a mail server: log instead of failing
		// the sign-in flow.
		s.logger.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Warn("SMTP not configured, skipping email delivery")
		return nil
	}

	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, cfg.FromEmail, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
