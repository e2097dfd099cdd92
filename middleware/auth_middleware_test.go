package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

type stubValidator struct {
	identity models.Identity
	err      error
}

func (s stubValidator) ValidateToken(tokenStr string) (models.Identity, error) {
	return s.identity, s.err
}

func newAuthTestRouter(v ITokenValidator, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(v)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, identity)
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuth(t *testing.T) {
	valid := stubValidator{identity: models.Identity{Email: "a@x.com"}}

	t.Run("Missing Header Is 401", func(t *testing.T) {
		rec := get(newAuthTestRouter(valid, false), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Invalid Token Is 401", func(t *testing.T) {
		rec := get(newAuthTestRouter(stubValidator{err: errors.New("bad token")}, false), "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Token Resolves Identity", func(t *testing.T) {
		rec := get(newAuthTestRouter(valid, false), "Bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "a@x.com")
	})

	t.Run("Token Without Bearer Scheme Is 401", func(t *testing.T) {
		rec := get(newAuthTestRouter(valid, false), "good")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong Scheme Is 401", func(t *testing.T) {
		rec := get(newAuthTestRouter(valid, false), "Basic good")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("Non-Admin Is 403", func(t *testing.T) {
		v := stubValidator{identity: models.Identity{Email: "a@x.com", IsAdmin: false}}
		rec := get(newAuthTestRouter(v, true), "Bearer good")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin Passes", func(t *testing.T) {
		v := stubValidator{identity: models.Identity{Email: "admin@x.com", IsAdmin: true}}
		rec := get(newAuthTestRouter(v, true), "Bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
