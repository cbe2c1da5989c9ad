package jwt

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := Generate("ann", testSecret, 5*time.Minute)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := Validate(token, testSecret)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Username != "ann" {
		t.Errorf("expected username ann, got %s", claims.Username)
	}
}

func TestValidate_Expired(t *testing.T) {
	token, err := Generate("ann", testSecret, -1*time.Minute)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	_, err = Validate(token, testSecret)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := Generate("ann", testSecret, 5*time.Minute)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	_, err = Validate(token, "another-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	_, err := Validate("not.a.token", testSecret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
