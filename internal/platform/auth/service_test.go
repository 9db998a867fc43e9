package auth

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestService(delay time.Duration) *Service {
	tokens := NewTokenIssuer("test-secret", time.Hour)
	return NewService(tokens, delay, zerolog.New(os.Stderr))
}

func TestLogin_KnownStaffUser(t *testing.T) {
	svc := newTestService(0)

	result, err := svc.Login(context.Background(), "staff@clinic1.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Actor.Role != RoleStaff {
		t.Errorf("expected Staff role, got %q", result.Actor.Role)
	}
	if result.Actor.ClinicID != "clinic1" {
		t.Errorf("expected clinic1, got %q", result.Actor.ClinicID)
	}
	if result.Actor.ClinicName != "Downtown Medical Center" {
		t.Errorf("unexpected clinic name %q", result.Actor.ClinicName)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(0)

	_, err := svc.Login(context.Background(), "staff@clinic1.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestService(0)

	_, err := svc.Login(context.Background(), "nobody@clinic9.com", "password123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Wrong password and unknown user must be indistinguishable to the caller.
func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(0)

	_, errWrongPass := svc.Login(context.Background(), "staff@clinic1.com", "nope")
	_, errUnknown := svc.Login(context.Background(), "ghost@nowhere.com", "password123")

	if errWrongPass.Error() != errUnknown.Error() {
		t.Errorf("failure modes differ: %q vs %q", errWrongPass, errUnknown)
	}
}

func TestLogin_DelayRespectsCancellation(t *testing.T) {
	svc := newTestService(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Login(ctx, "staff@clinic1.com", "password123")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("cancelled login took %v, expected immediate return", elapsed)
	}
}

func TestLogin_AppliesArtificialDelay(t *testing.T) {
	svc := newTestService(50 * time.Millisecond)

	start := time.Now()
	_, err := svc.Login(context.Background(), "admin@clinic1.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("login resolved in %v, expected at least the configured delay", elapsed)
	}
}
