package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/door2door/taskmarket-api/internal/core/domain"
)

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice@example.com", "pass1234", "Alice", "+1555")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a store-assigned id")
	}
	if user.PasswordHash == "pass1234" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.IsProfileComplete() {
		t.Error("profile with name and phone must be complete")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass", "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "", "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob@example.com", "pass1234", "", "")
	if _, err := svc.Register(context.Background(), "bob@example.com", "other", "", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "carol@example.com", "s3cret99", "Carol", "+1777"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The token must carry the email identity the middleware extracts.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims["email"] != "carol@example.com" {
		t.Errorf("token email claim = %v, want carol@example.com", claims["email"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave@example.com", "correct1", "", "")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
