package http

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// transportHeaderPrefix marks the keys of the raw transport mapping that carry
// real HTTP headers, the way CGI meta-variables do.
const transportHeaderPrefix = "HTTP_"

var headerCaser = cases.Title(language.English)

// normalizeHeaders converts a raw transport header mapping into a canonical header
// mapping. Keys carrying the HTTP_ marker are canonicalized (HTTP_ACCEPT_ENCODING
// becomes Accept-Encoding), the content type and length meta-variables map directly
// to their HTTP names, and every other key is dropped as transport metadata rather
// than a header. Duplicate canonical names: last write wins.
func normalizeHeaders(raw map[string]string) map[string]string {
	headers := make(map[string]string, len(raw))

	for key, value := range raw {
		switch {
		case strings.HasPrefix(key, transportHeaderPrefix):
			headers[canonicalHeaderName(strings.TrimPrefix(key, transportHeaderPrefix))] = value
		case key == "CONTENT_TYPE":
			headers["Content-Type"] = value
		case key == "CONTENT_LENGTH":
			headers["Content-Length"] = value
		}
	}

	return headers
}

// canonicalHeaderName title-cases each underscore-separated word and joins them
// with hyphens.
func canonicalHeaderName(key string) string {
	words := headerCaser.String(strings.ReplaceAll(key, "_", " "))

	return strings.ReplaceAll(words, " ", "-")
}
