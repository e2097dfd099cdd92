package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/apperrors"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/middleware"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

type IAuthService interface {
	Register(email, password string) (models.Identity, string, error)
	Login(email, password string) (models.Identity, string, error)
}

type AuthController struct {
	authService IAuthService
}

func NewAuthController(authService IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	identity, token, err := ac.authService.Register(req.Email, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": identity, "token": token})
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	identity, token, err := ac.authService.Login(req.Email, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": identity, "token": token})
}

// Me handles GET /api/auth/me, echoing the identity resolved from the token.
func (ac *AuthController) Me(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}
	c.JSON(http.StatusOK, identity)
}
