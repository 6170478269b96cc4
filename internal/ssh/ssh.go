// Package ssh provides SSH plumbing for devbox access. Devboxes are
// reached through a TLS tunnel: the proxy command wraps the connection
// in openssl s_client with SNI set to the devbox hostname.
package ssh

import (
	"context"
	"fmt"
	"os"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/runloopai/rlctl/internal/system"
)

// DefaultUser is the account devboxes expose over SSH.
const DefaultUser = "user"

// Options configures an SSH connection to a devbox.
type Options struct {
	Host               string // devbox SSH hostname from the control plane
	User               string
	KeyFile            string
	ProxyAddr          string // host:port of the TLS SSH proxy
	StrictHostKeyCheck bool
	RequestTTY         bool
}

// DefaultOptions returns Options with the standard devbox settings.
func DefaultOptions(host, keyFile, proxyAddr string) Options {
	return Options{
		Host:               host,
		User:               DefaultUser,
		KeyFile:            keyFile,
		ProxyAddr:          proxyAddr,
		StrictHostKeyCheck: false,
	}
}

// WithTTY returns a copy with a TTY requested.
func (o Options) WithTTY() Options {
	o.RequestTTY = true
	return o
}

// ProxyCommand returns the openssl tunnel command. %h is expanded by
// ssh to the destination hostname, which the proxy uses as SNI to
// route the connection.
func (o Options) ProxyCommand() string {
	return fmt.Sprintf(
		"openssl s_client -quiet -verify_quiet -servername %%h -connect %s 2>/dev/null",
		o.ProxyAddr,
	)
}

// Destination returns the user@host string.
func (o Options) Destination() string {
	return fmt.Sprintf("%s@%s", o.User, o.Host)
}

// BuildArgs returns complete ssh arguments for the connection.
func (o Options) BuildArgs(command ...string) []string {
	args := []string{
		"-i", o.KeyFile,
		"-o", fmt.Sprintf("ProxyCommand=%s", o.ProxyCommand()),
	}
	if !o.StrictHostKeyCheck {
		args = append(args, "-o", "StrictHostKeyChecking=no")
	}
	if o.RequestTTY {
		args = append(args, "-t")
	}
	args = append(args, o.Destination())
	args = append(args, command...)
	return args
}

// ConfigBlock renders an ssh_config Host stanza for the devbox, for
// users who want to connect with plain ssh or scp.
func (o Options) ConfigBlock(alias string) string {
	return fmt.Sprintf(`Host %s
  Hostname %s
  User %s
  IdentityFile %s
  StrictHostKeyChecking no
  ProxyCommand %s
`, alias, o.Host, o.User, o.KeyFile, o.ProxyCommand())
}

// WriteKey persists a devbox private key under keysDir with owner-only
// permissions and returns its path. The id is joined with securejoin
// so a hostile identifier cannot escape the key directory.
func WriteKey(keysDir, id, privateKey string) (string, error) {
	if err := os.MkdirAll(keysDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create key directory: %w", err)
	}

	path, err := securejoin.SecureJoin(keysDir, id+".pem")
	if err != nil {
		return "", fmt.Errorf("invalid devbox id %q: %w", id, err)
	}

	if err := os.WriteFile(path, []byte(privateKey), 0o600); err != nil {
		return "", fmt.Errorf("failed to write key file: %w", err)
	}
	return path, nil
}

// Interactive starts an interactive SSH session to the devbox.
func Interactive(ctx context.Context, opts Options) error {
	return system.DefaultExecutor().ExecuteInteractive(ctx, "ssh", opts.WithTTY().BuildArgs()...)
}

// ReplaceWithSession replaces the current process with an SSH session.
// It does not return on success.
func ReplaceWithSession(opts Options) error {
	return system.DefaultExecutor().ReplaceProcess("ssh", opts.WithTTY().BuildArgs()...)
}
