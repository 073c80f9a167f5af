package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/credentials"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider"
	"github.com/mfndnc/lab-authentication-with-passport/internal/logger"
	"github.com/mfndnc/lab-authentication-with-passport/internal/session"
	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

type Handler struct {
	strategies *auth.Registry
	providers  *provider.Registry
	accounts   *credentials.Service
	sessions   *session.Manager
}

func NewHandler(
	strategies *auth.Registry,
	providers *provider.Registry,
	accounts *credentials.Service,
	sessions *session.Manager,
) *Handler {
	return &Handler{
		strategies: strategies,
		providers:  providers,
		accounts:   accounts,
		sessions:   sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", h.Signup)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/auth/:provider", h.OAuthLogin)
	r.GET("/auth/:provider/callback", h.OAuthCallback)
}

func cookieOptions() session.CookieOptions {
	return session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// establishSession starts a session for a fully resolved identity and
// issues the cookie. Returns false after writing a 500 response.
func (h *Handler) establishSession(c *gin.Context, u *user.User) bool {
	sess, err := h.sessions.Start(c.Request.Context(), u)
	if err != nil {
		logger.Error("failed to establish session", map[string]any{
			"user_id": u.ID,
			"error":   err.Error(),
		})
		c.AbortWithStatus(http.StatusInternalServerError)
		return false
	}

	session.SetCookie(c.Writer, sess.ID, sess.ExpiresAt, cookieOptions())

	logger.Info("session established", map[string]any{
		"user_id": u.ID,
	})
	return true
}
