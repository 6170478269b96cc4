// Package update implements the best-effort daily update check. A
// failed or slow check never fails the running command; the worst
// outcome is no notice.
package update

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/runloopai/rlctl/internal/logging"
)

// Version is the build's version, set via -ldflags at release time.
var Version = "dev"

const (
	// releasesURL serves the latest release metadata.
	releasesURL = "https://api.github.com/repos/runloopai/rlctl/releases/latest"

	stampFile    = "last_update_check"
	checkTimeout = 2 * time.Second
	checkEvery   = 24 * time.Hour
)

// Checker performs the daily version check.
type Checker struct {
	cacheDir string
	url      string
	client   *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithURL points the checker at a different release endpoint (used in
// tests).
func WithURL(url string) Option {
	return func(c *Checker) {
		c.url = url
	}
}

// NewChecker creates a Checker storing its stamp under cacheDir.
func NewChecker(cacheDir string, opts ...Option) *Checker {
	c := &Checker{
		cacheDir: cacheDir,
		url:      releasesURL,
		client:   &http.Client{Timeout: checkTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShouldCheck reports whether a day has passed since the last check.
func (c *Checker) ShouldCheck() bool {
	info, err := os.Stat(filepath.Join(c.cacheDir, stampFile))
	if err != nil {
		return true
	}
	return time.Since(info.ModTime()) >= checkEvery
}

// LatestVersion fetches the latest released version tag, or "" when
// the check fails for any reason.
func (c *Checker) LatestVersion() string {
	resp, err := c.client.Get(c.url)
	if err != nil {
		logging.Debug("update check failed", "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Debug("update check failed", "status", resp.StatusCode)
		return ""
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		logging.Debug("update check parse failed", "error", err)
		return ""
	}
	return release.TagName
}

// Stamp records that a check happened now.
func (c *Checker) Stamp() {
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		logging.Debug("failed to create cache dir", "error", err)
		return
	}
	path := filepath.Join(c.cacheDir, stampFile)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		logging.Debug("failed to write update stamp", "error", err)
		return
	}
	now := time.Now()
	_ = os.Chtimes(path, now, now)
}

// Notice returns a user-facing upgrade hint when a newer release is
// available, "" otherwise. It stamps the check regardless of outcome.
func (c *Checker) Notice() string {
	if !c.ShouldCheck() {
		return ""
	}
	defer c.Stamp()

	latest := c.LatestVersion()
	if latest == "" || latest == Version || "v"+Version == latest {
		return ""
	}
	return "A new version of rlctl is available: " + latest
}
