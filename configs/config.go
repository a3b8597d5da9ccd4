package configs

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	LogLevel  string
	LogPretty bool
	SeedFile  string

	CORSOrigins []string
}

// LoadConfig reads .env (if present) into the environment and resolves
// every setting through viper so env vars win over defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment only")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SOURCE", "restaurant.db")
	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_SECRET", "changeme")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("CORS_ORIGINS", "")

	return &Config{
		DBDriver:  v.GetString("DB_DRIVER"),
		DBSource:  v.GetString("DB_SOURCE"),
		Port:      v.GetString("PORT"),
		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogPretty: v.GetBool("LOG_PRETTY"),
		SeedFile:  v.GetString("SEED_FILE"),

		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
}
