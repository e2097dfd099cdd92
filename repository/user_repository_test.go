package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

func TestUserRepository(t *testing.T) {
	t.Run("Create And Find Case-Insensitively", func(t *testing.T) {
		repo := NewUserRepository()

		err := repo.Create(models.User{Email: "User@Example.com", PasswordHash: "hash"})
		assert.NoError(t, err)

		user, err := repo.FindByEmail("user@example.COM")
		assert.NoError(t, err)
		assert.Equal(t, "User@Example.com", user.Email)
	})

	t.Run("Duplicate Email Rejected In Any Casing", func(t *testing.T) {
		repo := NewUserRepository()

		assert.NoError(t, repo.Create(models.User{Email: "a@x.com"}))
		assert.ErrorIs(t, repo.Create(models.User{Email: "A@X.COM"}), ErrEmailTaken)
	})

	t.Run("Missing User Is ErrNotFound", func(t *testing.T) {
		repo := NewUserRepository()

		_, err := repo.FindByEmail("nobody@x.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
