package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify/auth"
)

func (h *Handler) register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload"})
		return
	}

	session, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		case errors.Is(err, auth.ErrInvalidRegistration):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Name, email and password are required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": session.Token, "user": session.User.Public()})
}

func (h *Handler) login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload"})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": session.Token, "user": session.User.Public()})
}

func (h *Handler) me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user.Public())
}
