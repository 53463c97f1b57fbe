// Package mailer delivers contact form messages through a transactional
// email relay. EmailJS is the primary relay; plain SMTP is the fallback.
package mailer

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured means the relay credentials are missing.
	ErrNotConfigured = errors.New("email relay not configured")
	// ErrNetwork means the relay could not be reached.
	ErrNetwork = errors.New("email relay unreachable")
	// ErrRejected means the relay answered but refused the message.
	ErrRejected = errors.New("email relay rejected message")
)

type Message struct {
	Name         string
	Email        string
	Phone        string
	Description  string
	Timeline     string
	Budget       string
	Consultation string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Unconfigured is used when no relay has credentials. Every send reports
// ErrNotConfigured so the visitor is told the form is unavailable.
type Unconfigured struct{}

func (Unconfigured) Send(context.Context, Message) error {
	return ErrNotConfigured
}
