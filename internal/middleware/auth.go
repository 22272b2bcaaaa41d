package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier_back_end/internal/httpsession"
)

// LoginRequired protège les routes de gestion du catalogue et le checkout :
// sans identité de session, redirection vers /login avec une notice.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := httpsession.Identity(c); !ok {
			httpsession.Notify(c, "warning", "Veuillez vous connecter pour continuer")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
