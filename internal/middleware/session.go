package middleware

import (
	"net/http"

	"condoapp/internal/pkg/response"
	"condoapp/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionSource is the read side of the session cache.
type SessionSource interface {
	Current() (session.Context, bool)
}

// RequireSession loads the cached session into the request. Screens that
// need a logged-in user sit behind it.
func RequireSession(src SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := src.Current()
		if !ok || !sess.Authenticated() {
			response.Abort(c, http.StatusUnauthorized, "NOT_LOGGED_IN", "Usuário não logado. Faça login novamente.")
			return
		}

		c.Set(sessionKey, sess)
		c.Set("user_id", sess.UserID())
		c.Set("role", string(sess.Role()))
		c.Next()
	}
}

// RequireLinked rejects sessions without a condominium.
func RequireLinked() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Session(c).Linked() {
			response.Abort(c, http.StatusForbidden, "NOT_LINKED", "Vincule-se a um condomínio primeiro")
			return
		}
		c.Next()
	}
}

// Session returns the session set by RequireSession, or an anonymous one.
func Session(c *gin.Context) session.Context {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(session.Context); ok {
			return sess
		}
	}
	return session.Context{}
}
