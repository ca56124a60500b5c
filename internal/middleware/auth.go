package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BasicAuth gates a route group behind HTTP Basic credentials. A missing or
// invalid credential is reported distinctly from not-found and validation
// failures, before any request body is looked at. Comparison is constant-time
// so credential length and content do not leak through timing.
func BasicAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !equal(user, username) || !equal(pass, password) {
			c.Header("WWW-Authenticate", `Basic realm="restricted"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Not authenticated. Please use username and password to authenticate.",
				"code":  "NOT_AUTHENTICATED",
			})
			return
		}
		c.Next()
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
