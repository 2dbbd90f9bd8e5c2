package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sessionworks/go-auth-api/internal/application"
	"github.com/sessionworks/go-auth-api/pkg/response"
	"github.com/sessionworks/go-auth-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.ToList(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Message(c, http.StatusConflict, "Email already in use")
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Message(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "userId": u.ID})
}

// Signin POST /auth/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.ToList(err))
		return
	}

	sess, err := h.Svc.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Message(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("signin failed")
		response.Message(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged in", "sessionId": sess.ID})
}

// GetUser GET /auth/user/:userId
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid userId")
		return
	}

	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).Error("get user failed")
		response.Message(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	// The password hash stays server-side.
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"created_at": u.CreatedAt,
	}})
}
