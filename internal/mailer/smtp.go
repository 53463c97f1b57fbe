package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP relays messages through a plain SMTP server with PLAIN auth.
type SMTP struct {
	cfg      SMTPConfig
	logger   *zap.Logger
	sendMail sendMailFunc
}

func NewSMTP(cfg SMTPConfig, logger *zap.Logger) *SMTP {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.ToEmail == "" {
		cfg.ToEmail = cfg.User
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTP{cfg: cfg, logger: logger, sendMail: smtp.SendMail}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := s.cfg.Host + ":" + s.cfg.Port

	if err := s.sendMail(addr, auth, s.cfg.User, []string{s.cfg.ToEmail}, s.compose(msg)); err != nil {
		s.logger.Warn("smtp send failed", zap.String("addr", addr), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	s.logger.Info("contact message relayed", zap.String("relay", "smtp"))
	return nil
}

func (s *SMTP) compose(msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Phone: %s
Timeline: %s
Budget: %s
Consultation: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, orNotProvided(msg.Phone), orNotProvided(msg.Timeline),
		orNotProvided(msg.Budget), orNotProvided(msg.Consultation), msg.Description)

	return []byte("To: " + s.cfg.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe drops CR and LF so visitor input cannot inject headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}
