package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Strum355/log"
	"github.com/gin-gonic/gin"

	"melodex/middleware"
	"melodex/songs"
	"melodex/yt"
)

type createSongRequest struct {
	SongName   string `json:"song_name"`
	Artist     string `json:"artist"`
	Genre      string `json:"genre" binding:"required"`
	AudioPath  string `json:"audio_path"`
	VideoPath  string `json:"video_path"`
	Thumbnail  string `json:"thumbnail"`
	Duration   string `json:"duration"`
	YoutubeURL string `json:"youtube_url"`
}

func (h *Handler) CreateSong(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songs.Create(c.Request.Context(), user.ID, songs.CreateInput{
		SongName:   req.SongName,
		Artist:     req.Artist,
		Genre:      req.Genre,
		AudioPath:  req.AudioPath,
		VideoPath:  req.VideoPath,
		Thumbnail:  req.Thumbnail,
		Duration:   req.Duration,
		YoutubeURL: req.YoutubeURL,
	})
	if err != nil {
		h.renderSongError(c, err)
		return
	}

	c.JSON(http.StatusCreated, song)
}

func (h *Handler) ListSongs(c *gin.Context) {
	user := middleware.CurrentUser(c)

	library, err := h.songs.ListAll(user.ID)
	if err != nil {
		h.renderSongError(c, err)
		return
	}
	c.JSON(http.StatusOK, library)
}

func (h *Handler) ListSongsByGenre(c *gin.Context) {
	user := middleware.CurrentUser(c)

	matches, err := h.songs.ListByGenre(user.ID, c.Param("genre"))
	if err != nil {
		h.renderSongError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *Handler) DeleteSong(c *gin.Context) {
	user := middleware.CurrentUser(c)

	songID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid song id"})
		return
	}

	deleted, err := h.songs.Delete(user.ID, uint(songID))
	if err != nil {
		h.renderSongError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Song deleted successfully",
		"deleted_song": gin.H{
			"id":   deleted.ID,
			"name": deleted.SongName,
		},
	})
}

func (h *Handler) RefreshSong(c *gin.Context) {
	user := middleware.CurrentUser(c)

	songID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid song id"})
		return
	}

	song, err := h.songs.Refresh(c.Request.Context(), user.ID, uint(songID))
	if err != nil {
		h.renderSongError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Audio URL refreshed successfully",
		"song_id":   song.ID,
		"audio_url": song.AudioPath,
		"thumbnail": song.Thumbnail,
	})
}

// renderSongError maps service errors onto status codes. Extraction
// failures surface the URL and failure kind but never raw upstream text.
func (h *Handler) renderSongError(c *gin.Context, err error) {
	var validationErr *songs.ValidationError
	var extractionErr *yt.ExtractionError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &extractionErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": extractionErr.Public()})
	case errors.Is(err, songs.ErrNotRefreshable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "song is not backed by a YouTube video"})
	case errors.Is(err, songs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
	default:
		log.WithError(err).Error("song operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
