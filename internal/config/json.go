package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
// Durations are accepted either as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version        string `json:"version"`
		LogLevel       string `json:"log_level"`
		KeySealSecret  string `json:"key_seal_secret"`
		MaxSkillblocks int    `json:"max_skillblocks"`
	} `json:"app,omitempty"`

	Auth struct {
		Domain          string   `json:"domain"`
		ClientID        string   `json:"client_id"`
		ClientSecret    string   `json:"client_secret"`
		Audience        string   `json:"audience"`
		RedirectURL     string   `json:"redirect_url"`
		SigningMode     string   `json:"signing_mode"`
		SharedSecret    string   `json:"shared_secret"`
		PostLoginURL    string   `json:"post_login_url"`
		PostLogoutURL   string   `json:"post_logout_url"`
		UnauthorizedURL string   `json:"unauthorized_url"`
		StateTTL        Duration `json:"state_ttl"`
		JWKSCacheTTL    Duration `json:"jwks_cache_ttl"`
		InsecureCookies bool     `json:"insecure_cookies"`
	} `json:"auth,omitempty"`

	Analytics struct {
		BaseURL            string   `json:"base_url"`
		RequestTimeout     Duration `json:"request_timeout"`
		BreakerMaxFailures uint32   `json:"breaker_max_failures"`
		BreakerTimeout     Duration `json:"breaker_timeout"`
	} `json:"analytics,omitempty"`

	Storage struct {
		DB struct {
			DSN     string `json:"dsn"`
			Migrate bool   `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
		LoginRateLimit int      `json:"login_rate_limit"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
			KeySealSecret:  jsonCfg.App.KeySealSecret,
			MaxSkillblocks: jsonCfg.App.MaxSkillblocks,
		},
		Auth: Auth{
			Domain:          jsonCfg.Auth.Domain,
			ClientID:        jsonCfg.Auth.ClientID,
			ClientSecret:    jsonCfg.Auth.ClientSecret,
			Audience:        jsonCfg.Auth.Audience,
			RedirectURL:     jsonCfg.Auth.RedirectURL,
			SigningMode:     jsonCfg.Auth.SigningMode,
			SharedSecret:    jsonCfg.Auth.SharedSecret,
			PostLoginURL:    jsonCfg.Auth.PostLoginURL,
			PostLogoutURL:   jsonCfg.Auth.PostLogoutURL,
			UnauthorizedURL: jsonCfg.Auth.UnauthorizedURL,
			StateTTL:        time.Duration(jsonCfg.Auth.StateTTL),
			JWKSCacheTTL:    time.Duration(jsonCfg.Auth.JWKSCacheTTL),
			InsecureCookies: jsonCfg.Auth.InsecureCookies,
		},
		Analytics: Analytics{
			BaseURL:            jsonCfg.Analytics.BaseURL,
			RequestTimeout:     time.Duration(jsonCfg.Analytics.RequestTimeout),
			BreakerMaxFailures: jsonCfg.Analytics.BreakerMaxFailures,
			BreakerTimeout:     time.Duration(jsonCfg.Analytics.BreakerTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN:     jsonCfg.Storage.DB.DSN,
				Migrate: jsonCfg.Storage.DB.Migrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			LoginRateLimit: jsonCfg.Server.LoginRateLimit,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
