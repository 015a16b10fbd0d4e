package config

import (
	"os"

	"github.com/spf13/viper"
)

func initDefaults() {
	viper.SetDefault("database.url", os.Getenv("DATABASE_URL"))
	viper.SetDefault("jwt.secret", os.Getenv("JWT_SECRET"))
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("youtube.timeout", 10)
}
