package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"persona-sim/internal/domain"
	"persona-sim/internal/repository"
)

// UserService coordina registro y autenticación de usuarios.
type UserService struct {
	logger       *zap.Logger
	users        repository.UserRepository
	loginLimiter RateLimiter
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, loginLimiter RateLimiter) *UserService {
	if loginLimiter == nil {
		loginLimiter = NewRateLimiter(loginWindow, 5)
	}
	return &UserService{
		logger:       logger,
		users:        users,
		loginLimiter: loginLimiter,
	}
}

type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRateLimited        = errors.New("rate limited")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password too short")
)

const (
	loginWindow       = 10 * time.Minute
	minPasswordLength = 8
)

// Register crea un usuario nuevo con password hasheado con bcrypt.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr := normalizeEmail(input.Email)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}
	password := strings.TrimSpace(input.Password)
	if len(password) < minPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	if _, err := s.users.GetByEmail(ctx, emailAddr); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Authenticate valida credenciales. El rate limit por email corta fuerza
// bruta antes de tocar bcrypt.
func (s *UserService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.loginLimiter != nil && !s.loginLimiter.Allow(emailAddr) {
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser busca un usuario por id.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}

// RateLimiter limita la frecuencia de intentos por clave.
type RateLimiter interface {
	Allow(key string) bool
}

type slidingWindowLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewRateLimiter crea un rate limiter en memoria de ventana deslizante.
func NewRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &slidingWindowLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *slidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}
