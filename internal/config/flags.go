package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args on a dedicated FlagSet so
// it can be called more than once (e.g. in tests).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-migrate apply schema migrations at startup
//	-c/-config json file path with configs
//	-auth-domain identity provider domain
//	-auth-client-id OAuth2 client id
//	-auth-client-secret OAuth2 client secret
//	-auth-redirect-url login callback URL
//	-auth-signing-mode identity token algorithm (RS256 or HS256)
//	-analytics-url analytics data API base URL
//	-key-seal-secret secret for sealing analytics API keys
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origins comma separated allowed frontend origins
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("blockplot", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var migrate bool
	var authDomain, authClientID, authClientSecret, authRedirectURL, authSigningMode string
	var analyticsURL, keySealSecret, corsOrigins string
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&migrate, "migrate", false, "Apply schema migrations at startup")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&authDomain, "auth-domain", "", "Identity provider domain")
	fs.StringVar(&authClientID, "auth-client-id", "", "OAuth2 client id")
	fs.StringVar(&authClientSecret, "auth-client-secret", "", "OAuth2 client secret")
	fs.StringVar(&authRedirectURL, "auth-redirect-url", "", "Login callback URL")
	fs.StringVar(&authSigningMode, "auth-signing-mode", "", "Identity token algorithm (RS256 or HS256)")
	fs.StringVar(&analyticsURL, "analytics-url", "", "Analytics data API base URL")
	fs.StringVar(&keySealSecret, "key-seal-secret", "", "Secret for sealing analytics API keys")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed frontend origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var origins []string
	if corsOrigins != "" {
		origins = strings.Split(corsOrigins, ",")
	}

	return &StructuredConfig{
		App: App{
			KeySealSecret: keySealSecret,
		},
		Auth: Auth{
			Domain:       authDomain,
			ClientID:     authClientID,
			ClientSecret: authClientSecret,
			RedirectURL:  authRedirectURL,
			SigningMode:  authSigningMode,
		},
		Analytics: Analytics{
			BaseURL: analyticsURL,
		},
		Storage: Storage{
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: origins,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
