package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// User is an account in the library. The password column holds a bcrypt
// hash and is never serialized into responses.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50" json:"name"`
	Email    string `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:text;not null" json:"-"`
	Songs    []Song `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "users" }

// Song is a single library entry. Entries created from a YouTube link carry
// both YoutubeURL and VideoID; manual entries carry neither.
type Song struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SongName   string `gorm:"size:200;not null" json:"song_name"`
	Artist     string `gorm:"size:100;not null" json:"artist"`
	Genre      string `gorm:"size:50;not null" json:"genre"`
	AudioPath  string `gorm:"type:text;not null" json:"audio_path"`
	VideoPath  string `gorm:"type:text" json:"video_path,omitempty"`
	Thumbnail  string `gorm:"type:text" json:"thumbnail,omitempty"`
	Duration   string `gorm:"size:20" json:"duration,omitempty"`
	YoutubeURL string `gorm:"type:text" json:"youtube_url,omitempty"`
	VideoID    string `gorm:"size:20" json:"video_id,omitempty"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
}

func (Song) TableName() string { return "songs" }

// Claims is the JWT payload carried by the x-auth-token header.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
