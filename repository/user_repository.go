package repository

import (
	"errors"
	"strings"
	"sync"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository holds user records in memory for the lifetime of the process.
// Emails are matched case-insensitively; the original casing is preserved on
// the stored record.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User // key: lowercased email
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]models.User),
	}
}

// Create inserts a new user. The duplicate check and the insert happen under
// one write lock so concurrent registrations of the same email cannot both
// succeed.
func (r *UserRepository) Create(user models.User) error {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[key]; exists {
		return ErrEmailTaken
	}
	r.users[key] = user
	return nil
}

func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[strings.ToLower(email)]
	if !exists {
		return models.User{}, ErrNotFound
	}
	return user, nil
}
