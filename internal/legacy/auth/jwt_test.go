package auth

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundtrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour, "stajtakip.test")
	userID := primitive.NewObjectID().Hex()

	token, err := service.GenerateToken(userID, "student")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected userId %s, got %s", userID, claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("expected role student, got %s", claims.Role)
	}
}

func TestTokenExpired(t *testing.T) {
	service := NewTokenService("test-secret", -time.Minute, "stajtakip.test")

	token, err := service.GenerateToken(primitive.NewObjectID().Hex(), "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := service.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour, "x").GenerateToken(primitive.NewObjectID().Hex(), "company")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := NewTokenService("secret-b", time.Hour, "x")
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
