// Package profile handles the editable user profile form: draft state,
// client-side validation, and submission to the API.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/claude/liftlog/internal/api"
)

// Validation failure reasons.
const (
	ReasonMissingField = "missing_field"
	ReasonNonNumeric   = "non_numeric"
)

// GenericFailure is shown when the server rejects an update without a
// message of its own.
const GenericFailure = "Failed to update profile"

// ValidationError is a client-side form rejection. No network call is
// made for an invalid form.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile: %s: %s", e.Field, e.Reason)
}

// Form is a local draft of the six editable profile fields. All fields
// are strings as typed; coercion happens at submission.
type Form struct {
	Username string
	Email    string
	Height   string
	Weight   string
	Gender   string
	Age      string
}

// FormFromUser pre-fills a draft from the fetched user record. Absent
// attributes become empty strings, not sentinels, so the user sees an
// empty input rather than "N/A" to edit around.
func FormFromUser(u *api.User) Form {
	f := Form{Username: u.Username, Email: u.Email}
	if u.Height != nil {
		f.Height = strconv.FormatFloat(*u.Height, 'f', -1, 64)
	}
	if u.Weight != nil {
		f.Weight = strconv.FormatFloat(*u.Weight, 'f', -1, 64)
	}
	if u.Gender != nil {
		f.Gender = *u.Gender
	}
	if u.Age != nil {
		f.Age = strconv.Itoa(*u.Age)
	}
	return f
}

// Validate checks the draft: every field present, and height, weight and
// age numeric.
func (f *Form) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"username", f.Username},
		{"email", f.Email},
		{"height", f.Height},
		{"weight", f.Weight},
		{"gender", f.Gender},
		{"age", f.Age},
	}
	for _, fd := range fields {
		if strings.TrimSpace(fd.value) == "" {
			return &ValidationError{Field: fd.name, Reason: ReasonMissingField}
		}
	}

	for _, fd := range []struct{ name, value string }{
		{"height", f.Height},
		{"weight", f.Weight},
		{"age", f.Age},
	} {
		if _, err := strconv.ParseFloat(fd.value, 64); err != nil {
			return &ValidationError{Field: fd.name, Reason: ReasonNonNumeric}
		}
	}
	return nil
}

// Update coerces the validated draft into the API payload: gender
// lowercased, height/weight as floats, age as an integer.
func (f *Form) Update(userID string) (api.ProfileUpdate, error) {
	if err := f.Validate(); err != nil {
		return api.ProfileUpdate{}, err
	}

	height, _ := strconv.ParseFloat(f.Height, 64)
	weight, _ := strconv.ParseFloat(f.Weight, 64)
	age, err := strconv.Atoi(f.Age)
	if err != nil {
		// Fractional age input truncates.
		fl, _ := strconv.ParseFloat(f.Age, 64)
		age = int(fl)
	}

	return api.ProfileUpdate{
		UserID:   userID,
		Username: f.Username,
		Email:    f.Email,
		Height:   height,
		Weight:   weight,
		Gender:   strings.ToLower(f.Gender),
		Age:      age,
	}, nil
}

// Submit validates and sends the draft. The returned message is the
// server's confirmation. Validation failures return a *ValidationError
// without touching the network.
func (f *Form) Submit(ctx context.Context, client *api.Client, userID string) (string, error) {
	update, err := f.Update(userID)
	if err != nil {
		return "", err
	}
	return client.UpdateProfile(ctx, update)
}

// FailureMessage converts a Submit error into the text to show the user:
// the server's message verbatim when it sent one, else GenericFailure.
func FailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericFailure
}
