package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sessionworks/go-auth-api/internal/container"
	handlers "github.com/sessionworks/go-auth-api/internal/interface/http"
	"github.com/sessionworks/go-auth-api/internal/interface/middleware"
)

// AuthModule registers the public auth routes:
// POST /auth/signup, POST /auth/signin, GET /auth/user/:userId
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Signup/signin are brute-forceable, keep their per-IP limits tight.
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	lookupLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	auth := rg.Group("/auth")
	auth.POST("/signup", signupLimiter, m.Handler.Signup)
	auth.POST("/signin", signinLimiter, m.Handler.Signin)
	auth.GET("/user/:userId", lookupLimiter, m.Handler.GetUser)
}
