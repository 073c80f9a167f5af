package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth"
	"github.com/mfndnc/lab-authentication-with-passport/internal/logger"
)

// Login handles the local sign-in form. Success redirects home with a
// session established; an authentication failure redirects back to
// the sign-in entry point, without hinting at which field was wrong.
func (h *Handler) Login(c *gin.Context) {
	strat, err := h.strategies.Get(auth.StrategyLocal)
	if err != nil {
		logger.Error("local strategy not configured", map[string]any{
			"error": err.Error(),
		})
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out := strat.Authenticate(c.Request.Context(), auth.Credentials{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	})

	switch {
	case out.Err != nil:
		logger.Error("local sign-in errored", map[string]any{
			"error": out.Err.Error(),
		})
		c.AbortWithStatus(http.StatusInternalServerError)
	case !out.Authenticated():
		c.Redirect(http.StatusFound, "/login")
	default:
		if h.establishSession(c, out.User) {
			c.Redirect(http.StatusFound, "/")
		}
	}
}
