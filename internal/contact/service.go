package contact

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/toast"
)

const SuccessToastDuration = 8 * time.Second

var ErrSubmitInFlight = errors.New("a submission is already in progress")

type Relay interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Notifier receives the toast describing a submission outcome.
type Notifier interface {
	Push(t toast.Toast) toast.Toast
}

type Failure int

const (
	FailureNone Failure = iota
	FailureValidation
	FailureNotConfigured
	FailureNetwork
	FailureGeneric
)

type Result struct {
	// Form is what the page should show next: empty after a successful send,
	// the visitor's input otherwise.
	Form    FormData
	Errors  FieldErrors
	Toast   *toast.Toast
	Failure Failure
}

func (r Result) Sent() bool { return r.Failure == FailureNone }

type Service struct {
	relay         Relay
	schedulingURL string
	contactEmail  string
	logger        *zap.Logger
}

func NewService(relay Relay, schedulingURL, contactEmail string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		relay:         relay,
		schedulingURL: schedulingURL,
		contactEmail:  contactEmail,
		logger:        logger,
	}
}

// Submit validates the form and, when valid, relays it once. The outcome toast
// is pushed to n. Validation failures never reach the relay and push nothing;
// the inline field errors are the feedback.
func (s *Service) Submit(ctx context.Context, form FormData, n Notifier) Result {
	form = form.Normalized()

	if errs := Validate(form); !errs.Empty() {
		return Result{Form: form, Errors: errs, Failure: FailureValidation}
	}

	err := s.relay.Send(ctx, form.Message())
	if err != nil {
		failure := classify(err)
		s.logger.Warn("contact submission failed",
			zap.Error(err),
			zap.Int("failure", int(failure)),
		)
		t := n.Push(s.failureToast(failure))
		return Result{Form: form, Errors: FieldErrors{}, Toast: &t, Failure: failure}
	}

	s.logger.Info("contact submission sent", zap.Bool("consultation", form.WantsConsultation()))
	t := n.Push(s.successToast(form))
	return Result{Form: FormData{}, Errors: FieldErrors{}, Toast: &t, Failure: FailureNone}
}

func classify(err error) Failure {
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		return FailureNotConfigured
	case errors.Is(err, mailer.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return FailureNetwork
	default:
		return FailureGeneric
	}
}

func (s *Service) successToast(form FormData) toast.Toast {
	if form.WantsConsultation() && s.schedulingURL != "" {
		return toast.Toast{
			Title:       "Message sent!",
			Description: "Thanks for reaching out. Pick a time for your free consultation below.",
			Duration:    toast.Infinite,
			Action:      &toast.Action{Label: "Schedule a call", URL: s.schedulingURL},
		}
	}
	return toast.Toast{
		Title:       "Message sent!",
		Description: "Thanks for reaching out. I'll get back to you within 24 hours.",
		Duration:    SuccessToastDuration,
	}
}

func (s *Service) failureToast(f Failure) toast.Toast {
	t := toast.Toast{Variant: toast.VariantDestructive, Duration: SuccessToastDuration}
	switch f {
	case FailureNotConfigured:
		t.Title = "Email service unavailable"
		t.Description = "The contact form isn't configured right now."
		if s.contactEmail != "" {
			t.Description += " Please email " + s.contactEmail + " directly."
		}
	case FailureNetwork:
		t.Title = "Network error"
		t.Description = "Please check your connection and try again."
	default:
		t.Title = "Something went wrong"
		t.Description = "Your message could not be sent. Please try again later."
	}
	return t
}
