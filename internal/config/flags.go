package config

import (
	"errors"
	"flag"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-redis redis URL for the handshake store
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-handshake-ttl handshake lifetime (e.g., "5m")
//	-password-min-length minimal password length
//	-log-level log level (trace, debug, info, warn, error)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origins comma separated list of allowed origins
//	-sweep-interval expired handshake sweep interval
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var redisURL string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var handshakeTTL time.Duration
	var passwordMinLength int
	var logLevel string
	var requestTimeout time.Duration
	var corsOrigins string
	var sweepInterval time.Duration

	fs := flag.NewFlagSet("go-contacts", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis", "", "Redis URL for handshakes")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&handshakeTTL, "handshake-ttl", 0, "Handshake lifetime (e.g., 5m)")
	fs.IntVar(&passwordMinLength, "password-min-length", 0, "Minimal password length")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired handshake sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
			PasswordMinLength: passwordMinLength,
			HandshakeTTL:      handshakeTTL,
			LogLevel:          logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				URL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			CORSAllowedOrigins: splitList(corsOrigins),
		},
		Workers: Workers{
			HandshakeSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
	if port > 65535 {
		return errors.New("port number is out of range")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
