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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-password-secret application-wide password pepper
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-open-conns database connection pool bound
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var passwordSecret string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var maxOpenConns int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&passwordSecret, "password-secret", "", "Password hashing secret")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&maxOpenConns, "max-open-conns", 0, "Database connection pool bound")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			PasswordSecret: passwordSecret,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
