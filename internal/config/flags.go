package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a [StructuredConfig].
// Unset flags leave their fields zero so they do not override other sources.
//
// Flags:
//
//	-a server address in format [host]:port
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-driver database driver (postgres or sqlite3)
//	-d database DSN
//	-redis-url session store Redis URL
//	-c/-config json file path with configs
//	-session-sign-key session cookie signing key
//	-session-issuer session cookie issuer
//	-session-ttl session lifetime (e.g., "24h")
//	-secure-cookie mark the session cookie as Secure
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("report-catalog", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout time.Duration
	var driver, databaseDSN, redisURL string
	var jsonConfigPath string
	var sessionSignKey, sessionIssuer string
	var sessionTTL time.Duration
	var secureCookie bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&driver, "driver", "", "Database driver (postgres or sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Session store Redis URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session cookie signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session cookie issuer")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.BoolVar(&secureCookie, "secure-cookie", false, "Mark the session cookie as Secure")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey: sessionSignKey,
			SessionIssuer:  sessionIssuer,
			SessionTTL:     sessionTTL,
			SecureCookie:   secureCookie,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Session: Session{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty or
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
