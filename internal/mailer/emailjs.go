package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	Endpoint   string
}

// EmailJS sends messages through the EmailJS REST API.
type EmailJS struct {
	cfg        EmailJSConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewEmailJS(cfg EmailJSConfig, httpClient *http.Client, logger *zap.Logger) *EmailJS {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailJS{cfg: cfg, httpClient: httpClient, logger: logger}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (e *EmailJS) configured() bool {
	return e.cfg.ServiceID != "" && e.cfg.TemplateID != "" && e.cfg.PublicKey != ""
}

func (e *EmailJS) Send(ctx context.Context, msg Message) error {
	if !e.configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     e.cfg.TemplateID,
		UserID:         e.cfg.PublicKey,
		AccessToken:    e.cfg.PrivateKey,
		TemplateParams: templateParams(msg),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Warn("emailjs request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		e.logger.Warn("emailjs rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(detail))),
		)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	e.logger.Info("contact message relayed", zap.String("relay", "emailjs"))
	return nil
}

func templateParams(msg Message) map[string]string {
	return map[string]string{
		"from_name":    msg.Name,
		"from_email":   msg.Email,
		"reply_to":     msg.Email,
		"message":      msg.Description,
		"phone":        orNotProvided(msg.Phone),
		"timeline":     orNotProvided(msg.Timeline),
		"budget":       orNotProvided(msg.Budget),
		"consultation": orNotProvided(msg.Consultation),
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
