package http

import (
	"net/http"
	"strings"

	"strut.dev/pkg/strut/config"
)

const defaultFormat = "json"

// Settings carries the process-wide request defaults. They are built once at
// start-up and must not be mutated per request; every Request reads them, none
// writes them.
type Settings struct {
	// AllowedMethods is the deployment's verb allow-list. The request core never
	// rejects a verb itself; MethodAllowed exists for the dispatcher.
	AllowedMethods []string

	// DefaultFormat is the response-format token used when the URI carries no
	// explicit suffix.
	DefaultFormat string

	// BaseURL is the path prefix stripped before path-chain derivation.
	BaseURL string
}

// DefaultSettings returns the framework defaults: every standard verb allowed,
// json as the default format, no base URL.
func DefaultSettings() *Settings {
	return &Settings{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodTrace,
			http.MethodOptions,
			http.MethodConnect,
			http.MethodPatch,
		},
		DefaultFormat: defaultFormat,
	}
}

// SettingsFromConfig builds the request defaults from configuration, reading
// ALLOWED_METHODS (comma separated), DEFAULT_FORMAT and BASE_URL, with the
// framework defaults as fallback.
func SettingsFromConfig(cfg config.Config) *Settings {
	s := DefaultSettings()

	if methods := cfg.Get("ALLOWED_METHODS"); methods != "" {
		allowed := make([]string, 0)

		for _, m := range strings.Split(methods, ",") {
			if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
				allowed = append(allowed, m)
			}
		}

		s.AllowedMethods = allowed
	}

	s.DefaultFormat = cfg.GetOrDefault("DEFAULT_FORMAT", defaultFormat)
	s.BaseURL = cfg.Get("BASE_URL")

	return s
}

// MethodAllowed reports whether the verb is in the deployment's allow-list.
func (s *Settings) MethodAllowed(method string) bool {
	for _, m := range s.AllowedMethods {
		if strings.EqualFold(m, method) {
			return true
		}
	}

	return false
}
