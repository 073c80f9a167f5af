package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/credentials"
	"github.com/mfndnc/lab-authentication-with-passport/internal/logger"
	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

// Signup handles local account creation. Validation failures come
// back as the signup page with a user-visible message; success
// redirects to the sign-in entry point without establishing a session.
func (h *Handler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	created, err := h.accounts.SignUp(c.Request.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrMissingFields):
			renderForm(c, "Sign up", "/signup", "Sign up",
				"Please enter an Username and a Password")
		case errors.Is(err, credentials.ErrPasswordTooShort):
			renderForm(c, "Sign up", "/signup", "Sign up",
				"Your password has to be 8 chars min")
		case errors.Is(err, user.ErrUsernameTaken):
			renderForm(c, "Sign up", "/signup", "Sign up",
				"This username is already taken")
		default:
			logger.Error("signup failed", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user signed up", map[string]any{
		"user_id": created.ID,
	})

	c.Redirect(http.StatusFound, "/login")
}
