package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth"
	"github.com/mfndnc/lab-authentication-with-passport/internal/logger"
)

// OAuthLogin redirects the user agent to the provider's authorization
// endpoint with the declared scopes.
func (h *Handler) OAuthLogin(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.String(http.StatusNotFound, "unknown provider")
		return
	}

	state, err := generateState(c)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, p.AuthCodeURL(state))
}

// OAuthCallback completes the authorization-code exchange through the
// strategy registry. The session is established only strictly after
// identity resolution succeeds.
func (h *Handler) OAuthCallback(c *gin.Context) {
	providerName := c.Param("provider")

	strat, err := h.strategies.Get(providerName)
	if err != nil {
		c.String(http.StatusNotFound, "unknown provider")
		return
	}

	if !validateState(c) {
		logger.Warn("oauth callback state mismatch", map[string]any{
			"provider": providerName,
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": providerName,
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	out := strat.Authenticate(c.Request.Context(), auth.Credentials{
		Code: c.Query("code"),
	})

	switch {
	case out.Err != nil:
		logger.Error("oauth sign-in errored", map[string]any{
			"provider": providerName,
			"error":    out.Err.Error(),
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
