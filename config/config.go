package config

import (
	"fmt"
	"strings"

	"github.com/Strum355/log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, proceeding with defaults.")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	initDefaults()
	viper.AutomaticEnv()
}

// Validate checks that the settings without sane defaults were provided.
func Validate() error {
	for _, key := range []string{"database.url", "jwt.secret"} {
		if viper.GetString(key) == "" {
			env := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
			return fmt.Errorf("missing required configuration %s (env %s)", key, env)
		}
	}
	return nil
}
