package config

import "time"

// Signing modes accepted by Auth.SigningMode.
const (
	SigningModeRS256 = "RS256"
	SigningModeHS256 = "HS256"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:       "info",
			MaxSkillblocks: 4,
		},
		Auth: Auth{
			SigningMode:  SigningModeRS256,
			StateTTL:     10 * time.Minute,
			JWKSCacheTTL: time.Hour,
		},
		Analytics: Analytics{
			BaseURL:            "https://www.rescuetime.com",
			RequestTimeout:     30 * time.Second,
			BreakerMaxFailures: 5,
			BreakerTimeout:     time.Minute,
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8000",
			RequestTimeout: time.Minute,
			LoginRateLimit: 20,
		},
	}
}
