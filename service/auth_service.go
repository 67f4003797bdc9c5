package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// AuthService verifies bearer tokens issued by the identity provider.
// User accounts live outside this service; only the subject is used.
type AuthService struct {
	secret []byte
	logger *logrus.Logger
	now    func() time.Time
}

func NewAuthService(secret string, logger *logrus.Logger) *AuthService {
	return &AuthService{secret: []byte(secret), logger: logger, now: time.Now}
}

// IssueToken signs an HS256 token for userID valid for ttl.
func (s *AuthService) IssueToken(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", invalid("user", "is required")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ParseToken validates the token and returns its subject.
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		s.logger.WithError(err).Warn("rejected token")
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		s.logger.Warn("rejected token")
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		s.logger.Warn("token has no subject")
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}
