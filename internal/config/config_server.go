package config

import (
	"fmt"
)

// ServerConfig is the configuration view used by the cloud stub server.
type ServerConfig struct {
	// Server contains listen address and timeout settings.
	Server Server
}

// GetServerConfig builds and validates the stub server's config view
// from the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{Server: cfg.Server}

	return serverCfg, serverCfg.validate()
}
