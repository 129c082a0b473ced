package utils

import (
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	before := time.Now().Truncate(time.Second)
	token, err := GenerateToken("1", "sarah.johnson@zenfit.co.ke", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	id, exp, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if id != "1" {
		t.Fatalf("subject = %q", id)
	}
	if exp.Before(before.Add(time.Hour)) || exp.After(time.Now().Add(time.Hour)) {
		t.Fatalf("expiry %v not one hour out", exp)
	}
}

func TestVerifyRejectsExpiredAndForeignTokens(t *testing.T) {
	expired, err := GenerateToken("1", "x@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := VerifyToken(expired); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
	if _, _, err := VerifyToken("mock-jwt-token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	if HashToken("a") != HashToken("a") || HashToken("a") == HashToken("b") {
		t.Fatalf("HashToken must be deterministic and distinguish inputs")
	}
	if len(HashToken("a")) != 64 {
		t.Fatalf("expected hex sha256")
	}
}
