package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

// TokenService creates and validates the bearer tokens that carry identity.
// A token encodes {email, isAdmin} and stays valid until its expiry; there is
// no server-side revocation.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secretKey: []byte(secret), ttl: ttl}
}

// GenerateToken signs a token for the given identity.
func (s *TokenService) GenerateToken(email string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email":   email,
		"isAdmin": isAdmin,
		"exp":     now.Add(s.ttl).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken parses a token string and returns the identity it carries.
func (s *TokenService) ValidateToken(tokenStr string) (models.Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil || token == nil || !token.Valid {
		return models.Identity{}, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, fmt.Errorf("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return models.Identity{}, fmt.Errorf("invalid token: email claim is missing or not a string")
	}
	isAdmin, _ := claims["isAdmin"].(bool)

	return models.Identity{Email: email, IsAdmin: isAdmin}, nil
}
