package app

import (
	"strings"
	"time"

	"github.com/connectus-hq/connectus-backend/internal/platform/envutil"
)

// Config is loaded once at startup and treated as immutable for the process
// lifetime.
type Config struct {
	JWTSecretKey   string
	SessionTTL     time.Duration
	ActionTokenTTL time.Duration
	BcryptCost     int
	AdminSignupKey string
	AppBaseURL     string
	AllowOrigins   []string
}

func LoadConfig() Config {
	sessionTTLSeconds := envutil.Int("SESSION_TTL_SECONDS", 86400)
	actionTokenTTLSeconds := envutil.Int("ACTION_TOKEN_TTL_SECONDS", 86400)

	var origins []string
	if raw := envutil.String("CORS_ALLOW_ORIGINS", ""); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return Config{
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", "defaultsecret"),
		SessionTTL:     time.Duration(sessionTTLSeconds) * time.Second,
		ActionTokenTTL: time.Duration(actionTokenTTLSeconds) * time.Second,
		BcryptCost:     envutil.Int("BCRYPT_COST", 10),
		AdminSignupKey: envutil.String("ADMIN_KEY", ""),
		AppBaseURL:     envutil.String("APP_BASE_URL", "http://localhost:3000"),
		AllowOrigins:   origins,
	}
}
