// Package config resolves rlctl's client configuration.
//
// Configuration comes from two sources, in increasing precedence:
//
//  1. An optional TOML file at ~/.config/rlctl/config.toml:
//
//     env = "dev"
//     page_size = 50
//     poll_interval = "10s"
//
//  2. Environment variables: RUNLOOP_API_KEY (bearer token) and
//     RUNLOOP_ENV ("dev" selects the development control plane).
//
// The resolved Config answers endpoint questions for the rest of the
// CLI: BaseURL for API requests and SSHProxyAddr for the TLS tunnel
// used by devbox ssh. Helper functions locate the SSH key directory
// (~/.runloop/ssh_keys) and the cache directory used for the daily
// update-check stamp.
package config
