package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/apperrors"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

// --- Mock Service ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(email, password string) (models.Identity, string, error) {
	args := m.Called(email, password)
	return args.Get(0).(models.Identity), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(email, password string) (models.Identity, string, error) {
	args := m.Called(email, password)
	return args.Get(0).(models.Identity), args.String(1), args.Error(2)
}

// --- Tests ---

func TestLoginController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 OK", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)

		identity := models.Identity{Email: "test@example.com", IsAdmin: false}
		mockService.On("Login", "test@example.com", "password123").Return(identity, "signed-token", nil).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "test@example.com", "password": "password123"}`
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "signed-token")
		assert.Contains(t, recorder.Body.String(), "test@example.com")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Password - 401", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)
		mockService.On("Login", "test@example.com", "wrongpassword").
			Return(models.Identity{}, "", apperrors.Unauthenticated("Incorrect password.")).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "test@example.com", "password": "wrongpassword"}`
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Incorrect password.")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Email - 404", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)
		mockService.On("Login", "ghost@example.com", "password123").
			Return(models.Identity{}, "", apperrors.NotFound("No account found with this email. Please register.")).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "ghost@example.com", "password": "password123"}`
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Bad Request Body - 400", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)
		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "test@example.com"}` // Missing password
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Login")
	})
}

func TestRegisterController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 201 Created", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)

		identity := models.Identity{Email: "new@example.com", IsAdmin: false}
		mockService.On("Register", "new@example.com", "password123").Return(identity, "signed-token", nil).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		payload := `{"email": "new@example.com", "password": "password123"}`
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "signed-token")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Email - 409", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)
		mockService.On("Register", "taken@example.com", "password123").
			Return(models.Identity{}, "", apperrors.Conflict("An account with this email already exists.")).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		payload := `{"email": "taken@example.com", "password": "password123"}`
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockService.AssertExpectations(t)
	})
}
