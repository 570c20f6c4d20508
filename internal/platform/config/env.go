// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// NamedURL pairs a short identifier with an absolute upstream URL.
type NamedURL struct {
	Name string
	URL  string
}

// ParseNamedURLs parses `name=url` entries, preserving their order.
//
// Entries without a name are named after the URL host.
func ParseNamedURLs(entries []string) ([]NamedURL, error) {
	out := make([]NamedURL, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, rawURL, found := strings.Cut(entry, "=")
		if !found {
			rawURL = name
			name = ""
		}
		rawURL, err := ParseBaseURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry, err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			parsed, _ := url.Parse(rawURL)
			name = parsed.Hostname()
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("entry %q: duplicate name %q", entry, name)
		}
		seen[name] = struct{}{}
		out = append(out, NamedURL{Name: name, URL: rawURL})
	}
	return out, nil
}

// ParseBaseURL validates an absolute http(s) URL and strips trailing slashes.
func ParseBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("url %q must use http or https", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
