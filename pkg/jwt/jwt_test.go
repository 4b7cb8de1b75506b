package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "alice", "access", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.UserName != "alice" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseToken_WrongType(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "alice", "refresh", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("refresh token should not pass as access token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), 1, "bob", "access", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken([]byte("secret-b"), "access", token); err == nil {
		t.Fatal("token signed with another secret should be rejected")
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 1, "bob", "access", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expired token should be rejected")
	}
}
