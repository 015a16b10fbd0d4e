package songs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"melodex/models"
	"melodex/yt"
)

var (
	ErrNotFound       = errors.New("song not found")
	ErrNotRefreshable = errors.New("song has no YouTube URL to refresh")
)

// ValidationError reports the request fields that were missing or empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Resolver is the slice of yt.Resolver the service depends on.
type Resolver interface {
	Resolve(ctx context.Context, url string) (*yt.ResolvedAudio, error)
}

// Service manages a user's song library. Every operation filters by the
// owning user id, so a row owned by someone else looks identical to a row
// that does not exist.
type Service struct {
	db       *gorm.DB
	resolver Resolver
}

func NewService(db *gorm.DB, resolver Resolver) *Service {
	return &Service{db: db, resolver: resolver}
}

// CreateInput covers both creation paths. When YoutubeURL is set the
// resolver supplies every derived field and the manual fields are ignored.
type CreateInput struct {
	SongName   string
	Artist     string
	Genre      string
	AudioPath  string
	VideoPath  string
	Thumbnail  string
	Duration   string
	YoutubeURL string
}

// Create persists a new song owned by userID.
func (s *Service) Create(ctx context.Context, userID uint, in CreateInput) (*models.Song, error) {
	if in.Genre == "" {
		return nil, &ValidationError{Fields: []string{"genre"}}
	}

	var song models.Song
	if in.YoutubeURL != "" {
		resolved, err := s.resolver.Resolve(ctx, in.YoutubeURL)
		if err != nil {
			return nil, err
		}
		song = models.Song{
			UserID:     userID,
			SongName:   resolved.Title,
			Artist:     resolved.Artist,
			Genre:      in.Genre,
			AudioPath:  resolved.AudioURL,
			Thumbnail:  resolved.Thumbnail,
			Duration:   resolved.Duration,
			YoutubeURL: resolved.URL,
			VideoID:    resolved.VideoID,
		}
	} else {
		var missing []string
		if in.SongName == "" {
			missing = append(missing, "song_name")
		}
		if in.Artist == "" {
			missing = append(missing, "artist")
		}
		if in.AudioPath == "" {
			missing = append(missing, "audio_path")
		}
		if len(missing) > 0 {
			return nil, &ValidationError{Fields: missing}
		}
		song = models.Song{
			UserID:    userID,
			SongName:  in.SongName,
			Artist:    in.Artist,
			Genre:     in.Genre,
			AudioPath: in.AudioPath,
			VideoPath: in.VideoPath,
			Thumbnail: in.Thumbnail,
			Duration:  in.Duration,
		}
	}

	if err := s.db.Create(&song).Error; err != nil {
		return nil, err
	}
	return &song, nil
}

// ListAll returns every song the user owns, newest first. An empty library
// is an empty slice, not an error.
func (s *Service) ListAll(userID uint) ([]models.Song, error) {
	library := []models.Song{}
	err := s.db.Where("user_id = ?", userID).Order("id DESC").Find(&library).Error
	return library, err
}

// ListByGenre returns the user's songs whose genre matches exactly,
// case-sensitive. No matches is a valid empty result.
func (s *Service) ListByGenre(userID uint, genre string) ([]models.Song, error) {
	matches := []models.Song{}
	err := s.db.Where("user_id = ? AND genre = ?", userID, genre).Order("id DESC").Find(&matches).Error
	return matches, err
}

// Delete permanently removes one of the user's songs and returns the
// removed record. Absent and foreign rows both yield ErrNotFound.
func (s *Service) Delete(userID, songID uint) (*models.Song, error) {
	song, err := s.getOwned(userID, songID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(song).Error; err != nil {
		return nil, err
	}
	return song, nil
}

// Refresh re-resolves the song's stored YouTube URL and overwrites
// audio_path and thumbnail in place. Title, artist and duration are kept
// as stored even if the upstream video changed.
func (s *Service) Refresh(ctx context.Context, userID, songID uint) (*models.Song, error) {
	song, err := s.getOwned(userID, songID)
	if err != nil {
		return nil, err
	}
	if song.YoutubeURL == "" {
		return nil, ErrNotRefreshable
	}

	resolved, err := s.resolver.Resolve(ctx, song.YoutubeURL)
	if err != nil {
		return nil, err
	}

	// The ownership-filtered match is the only guard against a concurrent
	// delete; last writer wins.
	res := s.db.Model(&models.Song{}).
		Where("id = ? AND user_id = ?", song.ID, userID).
		Updates(map[string]interface{}{
			"audio_path": resolved.AudioURL,
			"thumbnail":  resolved.Thumbnail,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	song.AudioPath = resolved.AudioURL
	song.Thumbnail = resolved.Thumbnail
	return song, nil
}

func (s *Service) getOwned(userID, songID uint) (*models.Song, error) {
	var song models.Song
	err := s.db.Where("id = ? AND user_id = ?", songID, userID).First(&song).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}
