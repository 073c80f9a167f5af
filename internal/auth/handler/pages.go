package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Minimal inline pages. Real view rendering is glue outside the core;
// these exist so the form flows work end to end.

const pageTemplate = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<h1>%s</h1>
%s
<form method="post" action="%s">
  <label>Username <input type="text" name="username"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit">%s</button>
</form>
<p><a href="/auth/github">Sign in with GitHub</a></p>
<p><a href="/auth/slack">Sign in with Slack</a></p>
</body>
</html>
`

func renderForm(c *gin.Context, title, action, submit, message string) {
	banner := ""
	if message != "" {
		banner = "<p>" + html.EscapeString(message) + "</p>"
	}
	page := fmt.Sprintf(pageTemplate, title, title, banner, action, submit)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) LoginPage(c *gin.Context) {
	renderForm(c, "Login", "/login", "Log in", c.Query("message"))
}

func (h *Handler) SignupPage(c *gin.Context) {
	renderForm(c, "Sign up", "/signup", "Sign up", c.Query("message"))
}
