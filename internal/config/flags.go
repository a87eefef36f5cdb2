package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a config.
//
// Flags:
//
//	-a                   server HTTP address in format [host]:[port]
//	-grpc-address        server gRPC address in format [host]:[port]
//	-d                   database DSN (SQLite path on the client, Postgres DSN on the server)
//	-f                   blob directory for the file-system blob store
//	-safety-backup-path  bbolt file with pre-restore snapshots
//	-c/-config           json file path with configs
//	-request-timeout     request timeout (e.g., "30s", "1m")
//	-hash-key            integrity HMAC key
//	-adapter-address     blob store HTTP address used by the client
//	-adapter-grpc-address blob store gRPC address used by the client
//	-protocol            client transport: http or grpc
//	-max-blob-size       largest accepted blob in bytes
//	-rate-requests       requests per window per client (0 disables)
//	-rate-window         rate limiting window
//	-redis-address       redis used for shared rate limiting
//	-blob-ttl            age after which blobs are deleted (0 keeps forever)
//	-janitor-interval    how often expired blobs are collected
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-backup-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.BinaryDataDir, "f", "", "Blob storage directory")
	fs.StringVar(&cfg.Storage.SafetyBackupPath, "safety-backup-path", "", "Safety backup file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Integrity hash key")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "adapter-address", "", "Blob store HTTP address")
	fs.StringVar(&cfg.Adapter.GRPCAddress, "adapter-grpc-address", "", "Blob store gRPC address")
	fs.StringVar(&cfg.Adapter.Protocol, "protocol", "", "Client transport: http or grpc")
	fs.Int64Var(&cfg.Limits.MaxBlobSize, "max-blob-size", 0, "Largest accepted blob in bytes")
	fs.IntVar(&cfg.Limits.RateRequests, "rate-requests", 0, "Requests per window per client")
	fs.DurationVar(&cfg.Limits.RateWindow, "rate-window", 0, "Rate limiting window")
	fs.StringVar(&cfg.Limits.RedisAddress, "redis-address", "", "Redis address for shared rate limiting")
	fs.DurationVar(&cfg.Workers.BlobTTL, "blob-ttl", 0, "Blob time to live")
	fs.DurationVar(&cfg.Workers.JanitorInterval, "janitor-interval", 0, "Janitor run interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	// one timeout flag serves both roles
	cfg.Adapter.RequestTimeout = cfg.Server.RequestTimeout

	return &cfg, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
