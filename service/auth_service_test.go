package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestAuth_RoundTrip(t *testing.T) {
	s := NewAuthService("secret", quietLogger())

	token, err := s.IssueToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uid, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uid != "user-42" {
		t.Errorf("expected user-42, got %q", uid)
	}
}

func TestAuth_Expired(t *testing.T) {
	s := NewAuthService("secret", quietLogger())
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _ := s.IssueToken("u1", time.Hour)

	s.now = time.Now
	if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token, _ := NewAuthService("one", quietLogger()).IssueToken("u1", time.Hour)

	if _, err := NewAuthService("two", quietLogger()).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewAuthService("secret", quietLogger()).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_MissingSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))

	if _, err := NewAuthService("secret", quietLogger()).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_RejectionLogsCause(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := NewAuthService("secret", logger)

	_, err := s.ParseToken("not-a-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if strings.Contains(err.Error(), "<nil>") {
		t.Errorf("unexpected nil cause in %q", err)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning, got %+v", entry)
	}
	if cause, ok := entry.Data[logrus.ErrorKey].(error); !ok || cause == nil {
		t.Errorf("expected the parse error on the log entry, got %v", entry.Data)
	}
}
