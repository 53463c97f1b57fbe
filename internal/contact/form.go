// Package contact validates the lead form and hands accepted submissions to an
// email relay.
package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/widget"
)

const (
	MinPhoneDigits = 7
	MaxPhoneDigits = 15

	PhoneErrorMessage = "Please enter a valid phone number (7-15 digits)"
	EmailErrorMessage = "Please enter a valid email address"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneSeparator = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "", "+", "")

	ErrInvalidPhone = errors.New(PhoneErrorMessage)
	ErrInvalidEmail = errors.New(EmailErrorMessage)
)

// FormData is one form-fill session. Name keeps the "fullName" field name used
// by the HTMX form.
type FormData struct {
	Name         string `form:"fullName" json:"name"`
	Email        string `form:"email" json:"email"`
	Phone        string `form:"phone" json:"phone"`
	Description  string `form:"description" json:"description"`
	Timeline     string `form:"timeline" json:"timeline"`
	Budget       string `form:"budget" json:"budget"`
	Consultation string `form:"consultation" json:"consultation"`
}

func (f FormData) Normalized() FormData {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Description = strings.TrimSpace(f.Description)
	f.Timeline = strings.TrimSpace(f.Timeline)
	f.Budget = strings.TrimSpace(f.Budget)
	f.Consultation = strings.TrimSpace(f.Consultation)
	return f
}

// Value returns the field by its form name.
func (f FormData) Value(field string) string {
	switch field {
	case "fullName":
		return f.Name
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	case "description":
		return f.Description
	case widget.SelectTimeline:
		return f.Timeline
	case widget.SelectBudget:
		return f.Budget
	case widget.SelectConsultation:
		return f.Consultation
	}
	return ""
}

func (f FormData) WantsConsultation() bool {
	return f.Consultation == "Yes"
}

func (f FormData) Message() mailer.Message {
	return mailer.Message{
		Name:         f.Name,
		Email:        f.Email,
		Phone:        f.Phone,
		Description:  f.Description,
		Timeline:     f.Timeline,
		Budget:       f.Budget,
		Consultation: f.Consultation,
	}
}

// FieldErrors maps form field names to the inline message shown beside them.
type FieldErrors map[string]string

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

func (fe FieldErrors) Get(field string) string { return fe[field] }

// Validate checks a normalized form. An empty result means the form may be sent.
func Validate(f FormData) FieldErrors {
	errs := FieldErrors{}

	if f.Name == "" {
		errs["fullName"] = "Name is required"
	}

	switch {
	case f.Email == "":
		errs["email"] = "Email is required"
	case ValidateEmail(f.Email) != nil:
		errs["email"] = EmailErrorMessage
	}

	if err := ValidatePhone(f.Phone); err != nil {
		errs["phone"] = err.Error()
	}

	if f.Description == "" {
		errs["description"] = "Please tell me a little about your project"
	}

	checkOption(errs, widget.TimelineSelect, f.Timeline)
	checkOption(errs, widget.BudgetSelect, f.Budget)
	checkOption(errs, widget.ConsultationSelect, f.Consultation)

	return errs
}

func checkOption(errs FieldErrors, s widget.Select, value string) {
	if value != "" && !s.Has(value) {
		errs[s.ID] = "Please choose one of the listed options"
	}
}

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePhone accepts an empty value. Otherwise, once spaces, dashes, dots,
// parentheses and plus signs are removed, 7 to 15 ASCII digits must remain.
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return nil
	}

	digits := phoneSeparator.Replace(phone)
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		return ErrInvalidPhone
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}
