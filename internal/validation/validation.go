// Package validation holds the domain rules shared by the API server and
// the client SDK: the podcast platform allow-list, the closed category
// set, and the field constraints for watchlist entries.
package validation

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/podwatch/watchlist-api/pkg/errors"
)

// AllowedPodcastDomains lists the podcast platforms a watchlist URL may
// point at. A URL passes when its hostname (minus a leading "www.") equals
// one of these or is a subdomain of one.
var AllowedPodcastDomains = []string{
	"open.spotify.com",
	"podcasts.apple.com",
	"soundcloud.com",
	"youtube.com",
	"anchor.fm",
	"youtu.be",
}

// Categories is the closed set of podcast categories
var Categories = []string{
	"News & Politics",
	"Business & Finance",
	"Technology",
	"Health",
	"Comedy",
	"Science",
	"History",
	"Education",
	"Entertainment",
	"Sports",
	"Society & Culture",
	"Music",
	"Travel",
	"Food",
	"Gaming",
	"Art & Design",
	"Other",
}

// Validation messages reused across server and client
var (
	MsgInvalidURL    = "Invalid URL format. Please provide a valid HTTP/HTTPS URL"
	MsgInvalidDomain = fmt.Sprintf("Unsupported podcast platform. Allowed domains: %s", strings.Join(AllowedPodcastDomains, ", "))
	MsgPINRequired   = "PIN is required"
	MsgPINLength     = "PIN must be exactly 4 digits"
	MsgPINNumeric    = "PIN must contain only numbers"
)

// URL checks that raw parses as an HTTP(S) URL on an allow-listed domain
func URL(raw string) error {
	if raw == "" {
		return errors.Validation("URL is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.Validation(MsgInvalidURL)
	}

	domain := strings.TrimPrefix(parsed.Hostname(), "www.")
	for _, allowed := range AllowedPodcastDomains {
		if domain == allowed || strings.HasSuffix(domain, "."+allowed) {
			return nil
		}
	}

	return errors.Validation(MsgInvalidDomain)
}

// Title checks the 1-100 character bound
func Title(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.Validation("Title is required")
	}
	if len(title) > 100 {
		return errors.Validation("Title must be between 1 and 100 characters")
	}
	return nil
}

// Host checks the 1-50 character bound
func Host(host string) error {
	host = strings.TrimSpace(host)
	if host == "" {
		return errors.Validation("Host is required")
	}
	if len(host) > 50 {
		return errors.Validation("Host must be between 1 and 50 characters")
	}
	return nil
}

// Category checks membership in the closed category set
func Category(category string) error {
	if category == "" {
		return errors.Validation("Category is required")
	}
	for _, c := range Categories {
		if category == c {
			return nil
		}
	}
	return errors.Newf(errors.ErrCodeValidation, "Category must be one of: %s", strings.Join(Categories, ", "))
}

// Description checks the optional 500 character bound
func Description(description string) error {
	if len(description) > 500 {
		return errors.Validation("Description must be less than 500 characters")
	}
	return nil
}

// Rating checks the [0,5] bound
func Rating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errors.Validation("Rating must be between 0 and 5")
	}
	return nil
}

// RoundRating normalizes a rating to one decimal place
func RoundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}

// PIN checks candidate PIN format: present, exactly 4 characters, digits
// only. The checks run in that order so the caller can surface the first
// failing rule.
func PIN(pin string) error {
	if pin == "" {
		return errors.Validation(MsgPINRequired)
	}
	if len(pin) != 4 {
		return errors.Validation(MsgPINLength)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return errors.Validation(MsgPINNumeric)
		}
	}
	return nil
}
