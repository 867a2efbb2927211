package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studentregistry/internal/models"
	"studentregistry/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidRole        = errors.New("role must be admin, teacher or student")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token parsing.
type AuthService struct {
	users      repository.Users
	audit      repository.Audit
	signingKey []byte
}

func NewAuthService(users repository.Users, audit repository.Audit, signingKey string) *AuthService {
	return &AuthService{users: users, audit: audit, signingKey: []byte(signingKey)}
}

// Claims is the identity carried inside a signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int         `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// Register validates the input, hashes the password and creates the user.
// Duplicate usernames fail with ErrUsernameTaken.
func (s *AuthService) Register(username, password, role string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return 0, ErrMissingCredentials
	}
	if !models.ValidRole(role) {
		return 0, ErrInvalidRole
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(username, hash, models.Role(role))
	if err != nil {
		return 0, err
	}

	s.recordEvent(models.EventRegister, username, "User registered", map[string]any{"role": role})
	return id, nil
}

// Login verifies credentials and returns a signed token plus the user's role.
func (s *AuthService) Login(username, password string) (string, models.Role, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", "", err
	}
	if u == nil {
		return "", "", ErrInvalidCredentials
	}
	if verifyPassword(u.PasswordHash, password) != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}

	s.recordEvent(models.EventLogin, u.Username, "User logged in", nil)
	return token, u.Role, nil
}

// ParseToken verifies the signature and expiry and returns the claims.
// Every failure mode (malformed, forged, expired, wrong alg) surfaces as an
// error the caller must treat uniformly as "unauthenticated".
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// issueToken signs a 1h claim for the given user.
func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
	return token.SignedString(s.signingKey)
}

// recordEvent appends an audit entry; trail failures never fail the auth flow.
func (s *AuthService) recordEvent(typ, actor, desc string, meta map[string]any) {
	_ = s.audit.Append(context.Background(), models.AuditEvent{
		Type:        typ,
		Actor:       actor,
		Description: desc,
		Metadata:    meta,
	})
}

// hashPassword derives a salted bcrypt hash; two calls on the same input
// produce different hashes.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports a mismatch as a plain error, never a panic.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
