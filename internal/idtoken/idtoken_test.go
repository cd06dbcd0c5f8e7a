package idtoken

import (
	"testing"
	"time"
)

func TestSignParseRoundTrip(t *testing.T) {
	s := NewEphemeral("https://accounts.google.com")

	now := time.Now()
	raw, err := s.Sign("google_abc123xyz", "demo@gmail.com", "Utilisateur Google", "https://example.com/a.png", now, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := s.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "google_abc123xyz" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Email != "demo@gmail.com" || claims.Name != "Utilisateur Google" {
		t.Fatalf("profile claims lost: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti")
	}
}

func TestParseRejectsForeignKey(t *testing.T) {
	a := NewEphemeral("https://accounts.google.com")
	b := NewEphemeral("https://accounts.google.com")

	raw, err := a.Sign("sub", "x@y.z", "X", "", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := b.Parse(raw); err == nil {
		t.Fatalf("expected signature verification to fail")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	s := NewEphemeral("https://accounts.google.com")
	raw, err := s.Sign("sub", "x@y.z", "X", "", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	s.Issuer = "https://evil.example"
	if _, err := s.Parse(raw); err == nil {
		t.Fatalf("expected issuer check to fail")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	s := NewEphemeral("https://accounts.google.com")
	raw, err := s.Sign("sub", "x@y.z", "X", "", time.Now().Add(-2*time.Hour), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := s.Parse(raw); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}
