package profile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/claude/liftlog/internal/api"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func validForm() Form {
	return Form{
		Username: "alice",
		Email:    "alice@example.com",
		Height:   "170.5",
		Weight:   "62",
		Gender:   "Female",
		Age:      "30",
	}
}

// countingClient wires a client to a server that counts requests, so tests
// can assert that invalid forms never reach the network.
func countingClient(t *testing.T, handler http.HandlerFunc) (*api.Client, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if handler != nil {
			handler(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Profile updated"}`))
	}))
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL, staticToken("tok"), 0), &calls
}

// TestValidateMissingField verifies each empty field fails with
// missing_field, naming the offending field.
func TestValidateMissingField(t *testing.T) {
	fields := []string{"username", "email", "height", "weight", "gender", "age"}
	for _, field := range fields {
		f := validForm()
		switch field {
		case "username":
			f.Username = ""
		case "email":
			f.Email = ""
		case "height":
			f.Height = ""
		case "weight":
			f.Weight = ""
		case "gender":
			f.Gender = ""
		case "age":
			f.Age = "  "
		}

		err := f.Validate()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: error %v, want ValidationError", field, err)
			continue
		}
		if verr.Reason != ReasonMissingField {
			t.Errorf("%s: reason = %q, want missing_field", field, verr.Reason)
		}
		if verr.Field != field {
			t.Errorf("field = %q, want %q", verr.Field, field)
		}
	}
}

// TestValidateNonNumeric verifies non-numeric height/weight/age fail with
// non_numeric.
func TestValidateNonNumeric(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Form)
	}{
		{"height", func(f *Form) { f.Height = "tall" }},
		{"weight", func(f *Form) { f.Weight = "60kg" }},
		{"age", func(f *Form) { f.Age = "thirty" }},
	}
	for _, tc := range cases {
		f := validForm()
		tc.mutate(&f)

		err := f.Validate()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: error %v, want ValidationError", tc.name, err)
			continue
		}
		if verr.Reason != ReasonNonNumeric {
			t.Errorf("%s: reason = %q, want non_numeric", tc.name, verr.Reason)
		}
		if verr.Field != tc.name {
			t.Errorf("field = %q, want %q", verr.Field, tc.name)
		}
	}
}

// TestSubmitInvalidFormNoNetworkCall verifies validation failures issue
// no network request.
func TestSubmitInvalidFormNoNetworkCall(t *testing.T) {
	client, calls := countingClient(t, nil)

	f := validForm()
	f.Height = ""
	if _, err := f.Submit(context.Background(), client, "u1"); err == nil {
		t.Fatal("expected validation error")
	}

	f = validForm()
	f.Weight = "heavy"
	if _, err := f.Submit(context.Background(), client, "u1"); err == nil {
		t.Fatal("expected validation error")
	}

	if n := calls.Load(); n != 0 {
		t.Errorf("network calls = %d, want 0", n)
	}
}

// TestUpdateNormalization verifies gender lowercasing and numeric
// coercion of height, weight and age.
func TestUpdateNormalization(t *testing.T) {
	f := validForm()
	update, err := f.Update("u1")
	if err != nil {
		t.Fatal(err)
	}
	if update.Gender != "female" {
		t.Errorf("gender = %q, want female", update.Gender)
	}
	if update.Height != 170.5 {
		t.Errorf("height = %v, want 170.5", update.Height)
	}
	if update.Weight != 62 {
		t.Errorf("weight = %v, want 62", update.Weight)
	}
	if update.Age != 30 {
		t.Errorf("age = %d, want 30", update.Age)
	}
	if update.UserID != "u1" {
		t.Errorf("userId = %q, want u1", update.UserID)
	}
}

// TestSubmitSuccess verifies the server's confirmation message is
// returned on success.
func TestSubmitSuccess(t *testing.T) {
	client, calls := countingClient(t, nil)

	f := validForm()
	msg, err := f.Submit(context.Background(), client, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Profile updated" {
		t.Errorf("message = %q, want Profile updated", msg)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
}

// TestFailureMessage verifies server messages surface verbatim and a
// message-less failure falls back to the generic text.
func TestFailureMessage(t *testing.T) {
	client, _ := countingClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Username taken"}`))
	})

	f := validForm()
	_, err := f.Submit(context.Background(), client, "u1")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := FailureMessage(err); got != "Username taken" {
		t.Errorf("message = %q, want Username taken", got)
	}

	client, _ = countingClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err = f.Submit(context.Background(), client, "u1")
	if got := FailureMessage(err); got != GenericFailure {
		t.Errorf("message = %q, want %q", got, GenericFailure)
	}
}

// TestFormFromUser verifies draft pre-fill, including empty strings (not
// sentinels) for absent attributes.
func TestFormFromUser(t *testing.T) {
	h, g := 182.5, "male"
	u := &api.User{Username: "bob", Email: "b@example.com", Height: &h, Gender: &g}

	f := FormFromUser(u)
	if f.Username != "bob" || f.Email != "b@example.com" {
		t.Errorf("form = %+v", f)
	}
	if f.Height != "182.5" {
		t.Errorf("height = %q, want 182.5", f.Height)
	}
	if f.Gender != "male" {
		t.Errorf("gender = %q, want male", f.Gender)
	}
	if f.Weight != "" || f.Age != "" {
		t.Errorf("absent fields should pre-fill empty, got weight=%q age=%q", f.Weight, f.Age)
	}
}
