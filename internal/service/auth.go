package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// Create stores a user with an already hashed password and returns its id.
	Create(ctx context.Context, username string, passwordHash []byte, clearance models.Clearance) (int64, error)
	// FindByUsername returns every user with exactly that username, oldest first.
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
}

// AuthService registers accounts and turns credentials into sessions.
type AuthService struct {
	gate
	repo UserRepository
	cost int
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo UserRepository, log *zap.Logger) *AuthService {
	log = orNop(log)
	return &AuthService{gate: gate{log: log}, repo: repo, cost: bcrypt.DefaultCost}
}

// Register creates a normal account with clearance 1. Usernames are not
// checked for uniqueness.
func (a *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	return a.create(ctx, username, password, models.ClearanceNormal)
}

// RegisterAdmin creates an administrator account. Only administrators may do so.
func (a *AuthService) RegisterAdmin(ctx context.Context, s models.Session, username, password string) (int64, error) {
	if err := a.check(s, models.AdminClearance, "register admin"); err != nil {
		return 0, err
	}
	return a.create(ctx, username, password, models.ClearanceAdmin)
}

// EnsureAdmin creates the bootstrap administrator unless an administrator with
// that username already exists. It reports whether an account was created.
func (a *AuthService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	users, err := a.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("ensure admin: %w", err)
	}
	for _, u := range users {
		if u.Clearance >= models.ClearanceAdmin {
			return false, nil
		}
	}
	if _, err := a.create(ctx, username, password, models.ClearanceAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (a *AuthService) create(ctx context.Context, username, password string, clearance models.Clearance) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, fmt.Errorf("register: username and password are required: %w", models.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, fmt.Errorf("register: password is longer than 72 bytes: %w", models.ErrInvalidInput)
	}
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	id, err := a.repo.Create(ctx, username, hash, clearance)
	if err != nil {
		a.log.Error("register failed", zap.String("username", username), zap.Error(err))
		return 0, fmt.Errorf("register: %w", err)
	}
	a.log.Info("user registered",
		zap.Int64("user_id", id),
		zap.String("username", username),
		zap.Int("clearance", int(clearance)),
	)
	return id, nil
}

// Login checks the password against every account with that username and
// returns a session for the first one that matches. Unknown users and wrong
// passwords both yield models.ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	username = strings.TrimSpace(username)
	users, err := a.repo.FindByUsername(ctx, username)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	for _, u := range users {
		err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			continue
		}
		if err != nil {
			// A malformed hash only disqualifies that row.
			a.log.Warn("unreadable password hash", zap.Int64("user_id", u.ID), zap.Error(err))
			continue
		}
		s := models.Session{
			ID:        uuid.NewString(),
			UserID:    u.ID,
			Username:  u.Username,
			Clearance: u.Clearance,
		}
		a.log.Info("login succeeded",
			zap.String("session", s.ID),
			zap.String("username", s.Username),
			zap.Int("clearance", int(s.Clearance)),
		)
		return s, nil
	}
	a.log.Info("login failed", zap.String("username", username))
	return models.Session{}, models.ErrInvalidCredentials
}
