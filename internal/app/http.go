package app

import (
	"context"
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/credentials"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/handler"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/linker"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider/github"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider/slack"
	"github.com/mfndnc/lab-authentication-with-passport/internal/config"
	"github.com/mfndnc/lab-authentication-with-passport/internal/middleware"
	"github.com/mfndnc/lab-authentication-with-passport/internal/session"
	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := user.NewPostgresStore(infra.DB)
	sessionStore := session.NewRedisStore(infra.Redis.Client)
	sessions := session.NewManager(sessionStore, userStore, session.TTL)

	accounts := credentials.NewService(userStore)
	identityLinker := linker.New(userStore)

	githubProvider, err := github.New(
		cfg.GitHubClientID,
		cfg.GitHubClientSecret,
		cfg.GitHubRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	slackProvider, err := slack.New(
		cfg.SlackClientID,
		cfg.SlackClientSecret,
		cfg.SlackRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	providers := provider.NewRegistry(
		githubProvider,
		slackProvider,
	)

	strategies := auth.NewRegistry(
		auth.NewLocalStrategy(accounts),
		auth.NewProviderStrategy(githubProvider, identityLinker),
		auth.NewProviderStrategy(slackProvider, identityLinker),
	)

	authHandler := handler.NewHandler(strategies, providers, accounts, sessions)
	guard := middleware.NewGuard(sessions)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(
			`<h1>Home</h1><p><a href="/login">Login</a> | <a href="/signup">Sign up</a> | <a href="/private-page">Private page</a></p>`,
		))
	})

	// ----------------------------
	// Protected Web Routes
	// ----------------------------

	web := router.Group("/")
	web.Use(guard.RequireAuth())

	web.GET("/private-page", func(c *gin.Context) {
		u, _ := middleware.CurrentUser(c)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(
			`<h1>Private page</h1><p>Hello %s</p><p><a href="/logout">Logout</a></p>`,
			html.EscapeString(u.Username),
		)))
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(guard.RequireAuthJSON())

	api.GET("/me", func(c *gin.Context) {
		u, _ := middleware.CurrentUser(c)
		c.JSON(200, gin.H{
			"user_id":  u.ID,
			"username": u.Username,
		})
	})

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
