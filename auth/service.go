package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL matches the original product decision: sessions last 30 days.
const tokenTTL = 30 * 24 * time.Hour

var (
	// ErrInvalidCredentials signals wrong email or password. The message is
	// identical for both cases so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	// ErrTokenExpired signals that a bearer token is past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenInvalid signals a malformed or badly signed bearer token.
	ErrTokenInvalid = errors.New("auth: invalid token")
	// ErrInvalidRegistration signals a registration request missing a
	// required field.
	ErrInvalidRegistration = errors.New("auth: name, email and password are required")
)

// Service handles registration, login, and token verification.
type Service struct {
	repo      Repository
	jwtSecret []byte
	now       func() time.Time
}

// Session bundles the bearer token and the user it identifies.
type Session struct {
	Token string
	User  User
}

// NewService creates a new authentication service.
func NewService(repo Repository, jwtSecret string) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// Register creates a new account and returns a session for it.
// Duplicate emails fail with ErrDuplicateEmail.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return Session{}, ErrInvalidRegistration
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Phone:        req.Phone,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return Session{}, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return Session{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return Session{Token: token, User: user}, nil
}

// Login authenticates a user by email and password and returns a session.
func (s *Service) Login(ctx context.Context, req LoginRequest) (Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return Session{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return Session{Token: token, User: user}, nil
}

// GetUserByID retrieves a user record by its opaque identifier.
func (s *Service) GetUserByID(ctx context.Context, userID string) (User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// VerifyToken validates a bearer token and returns the subject user id.
// Expired and malformed tokens are distinguished so the boundary can log
// them apart; both surface as a generic 401 to clients.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}

// generateToken creates a signed JWT bound to the user.
func (s *Service) generateToken(user User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   now.Add(tokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
