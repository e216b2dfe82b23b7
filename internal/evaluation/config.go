package evaluation

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds the evaluation service settings.
type Config struct {
	// BaseURL is the public URL the service is mounted under.
	// Default: "http://localhost:8000/career-profile-tool".
	BaseURL string

	// Path is appended to BaseURL. Default: "/api/evaluate".
	Path string

	// Timeout bounds a single request. Default: 60s.
	Timeout time.Duration
}

// DefaultConfig returns a Config pointing at a locally running service.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000/career-profile-tool",
		Path:    "/api/evaluate",
		Timeout: 60 * time.Second,
	}
}

// Endpoint returns the full evaluation URL.
func (c Config) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(c.Path, "/")
}

// Validate checks that the endpoint is an absolute http(s) URL and the
// timeout is positive.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint())
	if err != nil {
		return fmt.Errorf("evaluation endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("evaluation endpoint %q: scheme must be http or https", c.Endpoint())
	}
	if u.Host == "" {
		return fmt.Errorf("evaluation endpoint %q: missing host", c.Endpoint())
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("evaluation timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
