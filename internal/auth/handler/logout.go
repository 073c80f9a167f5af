package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfndnc/lab-authentication-with-passport/internal/logger"
	"github.com/mfndnc/lab-authentication-with-passport/internal/session"
)

// Logout destroys the current session, clears the cookie, and
// redirects to the public home page. Safe to call without a session.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.End(c.Request.Context(), cookie.Value); err != nil {
			logger.Warn("failed to destroy session", map[string]any{
				"error": err.Error(),
			})
		}
	}

	session.ClearCookie(c.Writer, cookieOptions())

	c.Redirect(http.StatusFound, "/")
}
