package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/listing"
)

func (h *Handler) createListing(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	var attrs listing.Attributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload"})
		return
	}

	created, err := h.listings.Create(c.Request.Context(), user.ID, attrs)
	if err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) listListings(c *gin.Context) {
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	listings, err := h.listings.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) myListings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	listings, err := h.listings.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) getListing(c *gin.Context) {
	l, err := h.listings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) updateListing(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	var attrs listing.Attributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload"})
		return
	}

	updated, err := h.listings.Update(c.Request.Context(), c.Param("id"), user.ID, attrs)
	if err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteListing(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	if err := h.listings.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}

// writeListingError maps listing domain errors onto the HTTP taxonomy.
func writeListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, listing.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Property not found"})
	case errors.Is(err, listing.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized"})
	case errors.Is(err, listing.ErrInvalidAttributes):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}
