package watchlist

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/podwatch/watchlist-api/pkg/errors"
)

// allowedDomains mirrors the server's platform allowlist so the SDK can
// reject bad input before spending a round trip. Kept here rather than
// shared because internal packages are not importable by SDK consumers.
var allowedDomains = []string{
	"open.spotify.com",
	"podcasts.apple.com",
	"soundcloud.com",
	"youtube.com",
	"anchor.fm",
	"youtu.be",
}

// validateURL checks scheme and domain allowlist the same way the server does
func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errors.Validation("Invalid URL format. Please provide a valid HTTP/HTTPS URL")
	}

	hostname := strings.TrimPrefix(parsed.Hostname(), "www.")
	for _, domain := range allowedDomains {
		if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
			return nil
		}
	}

	return errors.Validation(fmt.Sprintf(
		"Unsupported podcast platform. Allowed domains: %s",
		strings.Join(allowedDomains, ", "),
	))
}

// validatePIN enforces the 4-digit format before any network call
func validatePIN(pin string) error {
	if pin == "" {
		return errors.Validation("PIN is required")
	}
	if len(pin) != 4 {
		return errors.Validation("PIN must be exactly 4 digits")
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return errors.Validation("PIN must contain only numbers")
		}
	}
	return nil
}
