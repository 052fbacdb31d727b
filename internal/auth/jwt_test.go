package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateJWT(secret, userID, "influencer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "influencer" {
		t.Errorf("Role = %q, want %q", claims.Role, "influencer")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "brand", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestParseJWTExpired(t *testing.T) {
	// A nanosecond lifetime truncates to an exp in the past once serialized.
	token, err := GenerateJWT("secret", uuid.New(), "brand", time.Nanosecond)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := ParseJWT("secret", token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals plain text")
	}

	if !CheckPassword("password123", hash) {
		t.Error("CheckPassword rejected correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword accepted wrong password")
	}
}
