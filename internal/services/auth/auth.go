package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

const (
	minPasswordLen = 6
	// bcrypt refuses longer input
	maxPasswordLen = 72
)

type UsersStorage interface {
	Insert(ctx context.Context, username, passwordHash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthService struct {
	log        *slog.Logger
	users      UsersStorage
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

func New(log *slog.Logger, users UsersStorage, secret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		log:        log,
		users:      users,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// Register stores a new user under the lowercased username and returns its id.
func (a *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	const op = "auth.AuthService.Register"
	username = strings.ToLower(strings.TrimSpace(username))
	log := a.log.With("op", op, "username", username)
	if username == "" || len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return 0, ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Error("Error hashing password", "errMsg", err.Error())
		return 0, err
	}
	id, err := a.users.Insert(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("username already taken")
			return 0, ErrUsernameTaken
		}
		log.Error("Error inserting user", "errMsg", err.Error())
		return 0, err
	}
	log.Info("user registered", "id", id)
	return id, nil
}

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords produce the same error.
func (a *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	const op = "auth.AuthService.Login"
	username = strings.ToLower(strings.TrimSpace(username))
	log := a.log.With("op", op, "username", username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}
	if len(password) > maxPasswordLen {
		return "", ErrInvalidCredentials
	}
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return "", ErrInvalidCredentials
		}
		log.Error("Error getting user", "errMsg", err.Error())
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Info("password mismatch")
			return "", ErrInvalidCredentials
		}
		log.Error("Error comparing password", "errMsg", err.Error())
		return "", err
	}
	token, err := a.NewToken(TokenUser{ID: user.ID, Username: user.Username})
	if err != nil {
		log.Error("Error signing token", "errMsg", err.Error())
		return "", err
	}
	return token, nil
}
