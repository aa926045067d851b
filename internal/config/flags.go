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
//	-a server address in format [host]:[port] (cloud stub server)
//	-s cloud service base URL
//	-g gallery directory scanned for media assets
//	-d settings database DSN
//	-token bearer token for cloud requests
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-upload-concurrency max simultaneous per-item cloud calls in a batch
//	-upload-rate batch dispatches per second (0 = unlimited)
//	-sync-interval auto-sync period (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var baseURL string
	var galleryDir string
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var uploadConcurrency int
	var uploadRate float64
	var syncInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&baseURL, "s", "", "Cloud service base URL")
	flag.StringVar(&galleryDir, "g", "", "Gallery directory")
	flag.StringVar(&databaseDSN, "d", "", "Settings database DSN")
	flag.StringVar(&token, "token", "", "Cloud bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&uploadConcurrency, "upload-concurrency", 0, "Max simultaneous uploads per batch")
	flag.Float64Var(&uploadRate, "upload-rate", 0, "Batch dispatches per second (0 = unlimited)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Auto-sync period (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Media: Media{
			GalleryDir: galleryDir,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			UploadConcurrency: uploadConcurrency,
			UploadRate:        uploadRate,
			SyncInterval:      syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless
// host is "localhost", and returns an error if the format or values are
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
