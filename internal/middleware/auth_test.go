package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"atelier_back_end/internal/httpsession"
)

func newGatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SESSION_SECRET", "secret-de-test")
	httpsession.Init()

	r := gin.New()
	r.GET("/manage-products", LoginRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestLoginRequiredRedirectsAnonymous(t *testing.T) {
	r := newGatedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/manage-products", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginRequiredPassesAuthenticated(t *testing.T) {
	r := newGatedRouter(t)

	// Forge un cookie de session portant une identité
	setup := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(setup)
	c.Request = httptest.NewRequest("GET", "/", nil)
	httpsession.SetIdentity(c, "Alice", "alice@example.com")
	cookie := setup.Header().Get("Set-Cookie")
	assert.NotEmpty(t, cookie)

	req := httptest.NewRequest("GET", "/manage-products", nil)
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
