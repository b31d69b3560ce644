package memory

import (
	"context"
	"strings"
	"sync"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

// UserModel enforces case-insensitive username uniqueness on insert.
type UserModel struct {
	mu     sync.RWMutex
	users  map[string]models.User
	lastID int64
}

func NewUserModel() *UserModel {
	return &UserModel{users: make(map[string]models.User)}
}

func (m *UserModel) Insert(_ context.Context, username, passwordHash string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(username)
	if _, exists := m.users[key]; exists {
		return 0, storage.ErrConflict
	}
	m.lastID++
	m.users[key] = models.User{ID: m.lastID, Username: username, PasswordHash: passwordHash}
	return m.lastID, nil
}

func (m *UserModel) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[strings.ToLower(username)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

func (m *UserModel) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}
