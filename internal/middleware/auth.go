package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfndnc/lab-authentication-with-passport/internal/logger"
	"github.com/mfndnc/lab-authentication-with-passport/internal/session"
	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

const currentUserKey = "currentUser"

// CurrentUser returns the identity attached to the request by the
// guard, if any.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

// Guard gates access to protected routes based on session state. It
// resolves the session once per request and attaches the identity to
// the request context; it never mutates session state.
type Guard struct {
	sessions *session.Manager
}

func NewGuard(sessions *session.Manager) *Guard {
	return &Guard{sessions: sessions}
}

// RequireAuth denies with a redirect to the sign-in entry point.
// Meant for browser-facing routes.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return g.require(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	})
}

// RequireAuthJSON denies with 401. Meant for API routes.
func (g *Guard) RequireAuthJSON() gin.HandlerFunc {
	return g.require(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "unauthorized",
		})
	})
}

func (g *Guard) require(deny func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			deny(c)
			return
		}

		u, err := g.sessions.Resolve(c.Request.Context(), cookie.Value)
		if err != nil {
			// store failure is not an authentication failure
			logger.Error("session resolve failed", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if u == nil {
			deny(c)
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}
