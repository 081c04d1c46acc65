package http

import "strings"

// deriveFormat extracts the response-format token from a requested URI. The query
// string is ignored and the token is whatever follows the last dot of the remaining
// path; a path without a dot carries no explicit format.
func deriveFormat(uri string) (string, bool) {
	path, _, _ := strings.Cut(uri, "?")

	segments := strings.Split(path, ".")
	if len(segments) < 2 {
		return "", false
	}

	return segments[len(segments)-1], true
}

// deriveChain splits a requested URI into the ordered path segments used for route
// resolution. The query string and format suffix are stripped in one pass on the
// earliest delimiter, the base URL prefix is removed, and the empty segment produced
// by a leading slash is dropped.
func deriveChain(uri, baseURL string) []string {
	path := uri
	if i := strings.IndexAny(path, "?."); i != -1 {
		path = path[:i]
	}

	path = strings.Trim(path, "/")
	base := strings.Trim(baseURL, "/")

	if base != "" && strings.HasPrefix(path, base) {
		path = strings.TrimPrefix(path, base)
	}

	chain := strings.Split(path, "/")
	if len(chain) > 0 && chain[0] == "" {
		chain = chain[1:]
	}

	return chain
}
