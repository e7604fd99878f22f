// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only structural invariants are checked here; whether a given deployment
// needs a DSN or a cache path depends on the role (server vs client), which
// is validated by the role-specific views.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.ServerURL != "" && !strings.Contains(cfg.Adapter.ServerURL, "://") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// validate checks the client-specific configuration view. The client needs a
// reachable server URL, a usable cache location, and a sane worker interval.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.Cache.Path == "" || strings.Contains(cfg.Storage.Cache.Path, "mode=memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.CachePruneInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
