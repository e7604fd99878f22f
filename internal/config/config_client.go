package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the peoplescope API server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCache contains local cache settings for the client.
type ClientCache struct {
	// Path is the SQLite file path of the local cache database.
	Path string
	// TTL is the freshness window of a cached search response.
	TTL time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Cache holds local result-cache settings.
	Cache ClientCache
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// CachePruneInterval defines how often the cache-prune worker runs.
	CachePruneInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies client defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Cache: ClientCache{
				Path: cfg.Storage.Cache.Path,
				TTL:  cfg.Storage.Cache.TTL,
			},
		},
		Workers: ClientWorkers{CachePruneInterval: cfg.Workers.CachePruneInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills in the values a local demo run can safely assume, so
// the client starts with nothing but a server URL configured.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.Cache.Path == "" {
		cfg.Storage.Cache.Path = "peoplescope-cache.db"
	}
	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = 24 * time.Hour
	}
	if cfg.Workers.CachePruneInterval == 0 {
		cfg.Workers.CachePruneInterval = 10 * time.Minute
	}
}
