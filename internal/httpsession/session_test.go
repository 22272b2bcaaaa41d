package httpsession

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SESSION_SECRET", "secret-de-test")
	Init()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestIDIsStableWithinSession(t *testing.T) {
	c := newTestContext(t)

	sid := ID(c)
	assert.NotEmpty(t, sid)
	assert.Equal(t, sid, ID(c))
}

func TestIdentityRoundTrip(t *testing.T) {
	c := newTestContext(t)

	_, _, ok := Identity(c)
	assert.False(t, ok)

	SetIdentity(c, "Alice", "alice@example.com")

	name, email, ok := Identity(c)
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)
	assert.Equal(t, "alice@example.com", email)

	ClearIdentity(c)
	_, _, ok = Identity(c)
	assert.False(t, ok)
}

func TestNoticesConsumedOnce(t *testing.T) {
	c := newTestContext(t)

	Notify(c, "success", "Produit ajouté")
	Notify(c, "warning", "Stock faible")

	notices := TakeNotices(c)
	assert.Len(t, notices, 2)
	assert.Equal(t, Notice{Level: "success", Message: "Produit ajouté"}, notices[0])

	assert.Empty(t, TakeNotices(c), "les notices ne sont affichées qu'une fois")
}
