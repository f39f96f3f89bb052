package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jellydator/ttlcache/v3"

	"rentify/admin"
	"rentify/auth"
	"rentify/listing"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	auth     *auth.Service
	listings *listing.Service
	admin    *admin.Service
}

// NewHandler builds the Handler over the three services.
func NewHandler(authSvc *auth.Service, listingSvc *listing.Service, adminSvc *admin.Service) *Handler {
	return &Handler{auth: authSvc, listings: listingSvc, admin: adminSvc}
}

// NewRouter mounts every route under /api and returns the engine. The user
// cache is owned by the caller so its janitor lifecycle can be managed
// alongside the server's.
func NewRouter(h *Handler, users *ttlcache.Cache[string, auth.User]) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Rentify API"})
	})

	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)

	api.GET("/properties", h.listListings)
	api.GET("/properties/:id", h.getListing)

	authed := api.Group("/")
	authed.Use(AuthRequired(h.auth, users))
	{
		authed.GET("/auth/me", h.me)
		authed.POST("/properties", h.createListing)
		authed.GET("/properties/my", h.myListings)
		authed.PUT("/properties/:id", h.updateListing)
		authed.DELETE("/properties/:id", h.deleteListing)
		authed.POST("/upload-image", h.uploadImage)
	}

	adminRoutes := api.Group("/admin")
	adminRoutes.Use(AuthRequired(h.auth, users), AdminRequired())
	{
		adminRoutes.GET("/stats", h.adminStats)
		adminRoutes.GET("/users", h.adminListUsers)
		adminRoutes.DELETE("/users/:id", h.adminDeleteUser)
		adminRoutes.GET("/properties", h.adminListListings)
		adminRoutes.DELETE("/properties/:id", h.adminDeleteListing)
	}

	return r
}
