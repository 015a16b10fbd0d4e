package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodex/auth"
	"melodex/songs"
)

// Handler wires the HTTP surface to the auth and library services.
type Handler struct {
	auth  *auth.Service
	songs *songs.Service
}

func New(authSvc *auth.Service, songSvc *songs.Service) *Handler {
	return &Handler{auth: authSvc, songs: songSvc}
}

// RegisterRoutes mounts every route. authMW guards the /songs group.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.GET("/", h.Health)

	a := r.Group("/auth")
	a.POST("/signup", h.Signup)
	a.POST("/login", h.Login)

	s := r.Group("/songs", authMW)
	s.POST("/", h.CreateSong)
	s.GET("/", h.ListSongs)
	s.GET("/refresh/:id", h.RefreshSong)
	s.GET("/:genre", h.ListSongsByGenre)
	s.DELETE("/:id", h.DeleteSong)
}

// Health confirms the service is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Music library API is running",
		"status":  "healthy",
	})
}
