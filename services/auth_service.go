package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/apperrors"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/repository"
)

type IUserRepository interface {
	Create(user models.User) error
	FindByEmail(email string) (models.User, error)
}

type ITokenService interface {
	GenerateToken(email string, isAdmin bool) (string, error)
	ValidateToken(tokenStr string) (models.Identity, error)
}

// AuthService owns registration and login. Passwords are stored as bcrypt
// hashes; identity is proven afterwards solely by the issued token.
type AuthService struct {
	userRepo     IUserRepository
	tokenService ITokenService
}

func NewAuthService(ur IUserRepository, ts ITokenService) *AuthService {
	return &AuthService{userRepo: ur, tokenService: ts}
}

// Register creates an account and returns its identity with a fresh token.
// The email is claimed case-insensitively.
func (s *AuthService) Register(email, password string) (models.Identity, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Identity{}, "", apperrors.Internal("Failed to hash password", err)
	}

	newUser := models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      false,
	}

	if err := s.userRepo.Create(newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return models.Identity{}, "", apperrors.Conflict("An account with this email already exists.")
		}
		return models.Identity{}, "", apperrors.Internal("Failed to create account", err)
	}

	return s.issueToken(newUser)
}

// Login verifies credentials against the stored hash. An unknown email and a
// wrong password are distinct failures.
func (s *AuthService) Login(email, password string) (models.Identity, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return models.Identity{}, "", apperrors.NotFound("No account found with this email. Please register.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Identity{}, "", apperrors.Unauthenticated("Incorrect password.")
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user models.User) (models.Identity, string, error) {
	token, err := s.tokenService.GenerateToken(user.Email, user.IsAdmin)
	if err != nil {
		return models.Identity{}, "", apperrors.Internal("Failed to generate token", err)
	}
	return models.Identity{Email: user.Email, IsAdmin: user.IsAdmin}, token, nil
}
