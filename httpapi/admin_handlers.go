package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify/auth"
	"rentify/listing"
)

func (h *Handler) adminStats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) adminListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	public := make([]auth.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	c.JSON(http.StatusOK, public)
}

func (h *Handler) adminDeleteUser(c *gin.Context) {
	if err := h.admin.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *Handler) adminListListings(c *gin.Context) {
	listings, err := h.admin.ListListings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) adminDeleteListing(c *gin.Context) {
	if err := h.admin.DeleteListing(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}
