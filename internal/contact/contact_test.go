package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/toast"
)

type stubRelay struct {
	err   error
	calls []mailer.Message
}

func (s *stubRelay) Send(_ context.Context, msg mailer.Message) error {
	s.calls = append(s.calls, msg)
	return s.err
}

func validForm() FormData {
	return FormData{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Description: "I need a website",
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"", true},
		{"   ", true},
		{"1234567", true},
		{"123456789012345", true},
		{"+1 (555) 123-4567", true},
		{"555.123.4567", true},
		{"123456", false},
		{"1234567890123456", false},
		{"12a34", false},
		{"555-CALL-NOW", false},
		{"５５５１２３４５６７", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPhone)
			}
		})
	}
}

func TestAcceptedPhonesStripToDigitRange(t *testing.T) {
	for n := 1; n <= 20; n++ {
		phone := "(" + strings.Repeat("9", n) + ")"
		err := ValidatePhone(phone)
		inRange := n >= MinPhoneDigits && n <= MaxPhoneDigits
		assert.Equal(t, inRange, err == nil, fmt.Sprintf("%d digits", n))
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@b.co"))
	assert.Error(t, ValidateEmail("ab.co"))
	assert.Error(t, ValidateEmail("a@bco"))
	assert.Error(t, ValidateEmail("a b@c.io"))
}

func TestValidateRequiredFields(t *testing.T) {
	errs := Validate(FormData{})
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "description")
	assert.NotContains(t, errs, "phone")
}

func TestValidateSelectOptions(t *testing.T) {
	f := validForm()
	f.Budget = "a million dollars"
	f.Consultation = "Yes"
	errs := Validate(f)
	assert.Contains(t, errs, "budget")
	assert.NotContains(t, errs, "consultation")
}

func TestSubmitInvalidEmailNeverCallsRelay(t *testing.T) {
	relay := &stubRelay{}
	q := toast.NewQueue()
	defer q.Close()

	f := validForm()
	f.Email = "not-an-email"
	res := NewService(relay, "", "", nil).Submit(context.Background(), f, q)

	assert.Equal(t, FailureValidation, res.Failure)
	assert.Equal(t, EmailErrorMessage, res.Errors.Get("email"))
	assert.Empty(t, relay.calls)
	assert.Equal(t, 0, q.Len())
}

func TestSubmitInvalidPhoneBlocks(t *testing.T) {
	relay := &stubRelay{}
	q := toast.NewQueue()
	defer q.Close()

	f := validForm()
	f.Phone = "12a34"
	res := NewService(relay, "", "", nil).Submit(context.Background(), f, q)

	assert.False(t, res.Sent())
	assert.Equal(t, PhoneErrorMessage, res.Errors.Get("phone"))
	assert.Empty(t, relay.calls)
}

func TestSubmitSuccessResetsFormAndToastsOnce(t *testing.T) {
	relay := &stubRelay{}
	q := toast.NewQueue()
	defer q.Close()

	res := NewService(relay, "https://cal.com/me", "", nil).Submit(context.Background(), validForm(), q)

	require.True(t, res.Sent())
	assert.Equal(t, FormData{}, res.Form)
	require.Len(t, relay.calls, 1)
	assert.Equal(t, "Ada Lovelace", relay.calls[0].Name)

	list := q.List()
	require.Len(t, list, 1)
	assert.Equal(t, toast.VariantDefault, list[0].Variant)
	assert.Equal(t, SuccessToastDuration, list[0].Duration)
	assert.Nil(t, list[0].Action)
}

func TestSubmitWithConsultationKeepsToastWithSchedulingLink(t *testing.T) {
	relay := &stubRelay{}
	q := toast.NewQueue()
	defer q.Close()

	f := validForm()
	f.Consultation = "Yes"
	res := NewService(relay, "https://cal.com/me", "", nil).Submit(context.Background(), f, q)

	require.NotNil(t, res.Toast)
	assert.True(t, res.Toast.Persistent())
	require.NotNil(t, res.Toast.Action)
	assert.Equal(t, "https://cal.com/me", res.Toast.Action.URL)
	assert.Equal(t, 1, q.Len())
}

func TestSubmitFailureKeepsValuesAndToastsDestructive(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		failure Failure
		title   string
	}{
		{"not configured", mailer.ErrNotConfigured, FailureNotConfigured, "Email service unavailable"},
		{"network", fmt.Errorf("%w: dial", mailer.ErrNetwork), FailureNetwork, "Network error"},
		{"timeout", context.DeadlineExceeded, FailureNetwork, "Network error"},
		{"rejected", fmt.Errorf("%w: 400", mailer.ErrRejected), FailureGeneric, "Something went wrong"},
		{"other", errors.New("boom"), FailureGeneric, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &stubRelay{err: tt.err}
			q := toast.NewQueue()
			defer q.Close()

			f := validForm()
			f.Phone = "555 123 4567"
			res := NewService(relay, "", "me@example.com", nil).Submit(context.Background(), f, q)

			assert.Equal(t, tt.failure, res.Failure)
			assert.Equal(t, "555 123 4567", res.Form.Phone)
			assert.Equal(t, "Ada Lovelace", res.Form.Name)

			list := q.List()
			require.Len(t, list, 1)
			assert.Equal(t, toast.VariantDestructive, list[0].Variant)
			assert.Equal(t, tt.title, list[0].Title)
			assert.Len(t, relay.calls, 1)
		})
	}
}
