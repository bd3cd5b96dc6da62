package util

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key-for-unit-tests-only"

func TestGenerateAndParseAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(42, testSecret, 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	token, err := GenerateRefreshToken(7, testSecret, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeRefresh)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, _ := GenerateAccessToken(1, testSecret, time.Minute)
	if _, err := ParseJWT(token, "a-different-secret-entirely"); err == nil {
		t.Error("ParseJWT accepted a token signed with another secret")
	}
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, _ := GenerateAccessToken(1, testSecret, -time.Minute)
	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("ParseJWT accepted an expired token")
	}
}
