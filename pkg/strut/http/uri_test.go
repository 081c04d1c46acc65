package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDeriveFormat(t *testing.T) {
	tests := []struct {
		desc     string
		uri      string
		expected string
		ok       bool
	}{
		{"explicit suffix", "/users/1.json", "json", true},
		{"no suffix", "/users/1", "", false},
		{"suffix with query string", "/users/1.json?x=1", "json", true},
		{"dot inside query string only", "/users/1?file=a.txt", "", false},
		{"multiple dots", "/archive/v1.2.xml", "xml", true},
		{"root", "/", "", false},
	}

	for i, tc := range tests {
		format, ok := deriveFormat(tc.uri)

		assert.Equal(t, tc.ok, ok, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expected, format, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestDeriveChain(t *testing.T) {
	tests := []struct {
		desc     string
		uri      string
		baseURL  string
		expected []string
	}{
		{"base url stripped", "/api/users/1.json", "/api", []string{"users", "1"}},
		{"no base url", "/users/1", "", []string{"users", "1"}},
		{"query string stripped", "/users/1?x=1", "", []string{"users", "1"}},
		{"format and query stripped on earliest delimiter", "/users/1.json?x=1", "", []string{"users", "1"}},
		{"base url with trailing slash", "/api/users", "/api/", []string{"users"}},
		{"path equals base url", "/api", "/api", []string{}},
		{"root", "/", "", []string{}},
		{"base url not a prefix", "/users/1", "/api", []string{"users", "1"}},
	}

	for i, tc := range tests {
		chain := deriveChain(tc.uri, tc.baseURL)

		assert.Equal(t, tc.expected, chain, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestDeriveChain_RoundTripsPathSegments(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segments := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,8}`), 1, 5).Draw(t, "segments")
		uri := "/" + strings.Join(segments, "/")

		chain := deriveChain(uri, "")

		assert.Equal(t, segments, chain, "chain must reproduce the path segments of %q", uri)
	})
}

func TestDeriveChain_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segments := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,8}`), 0, 5).Draw(t, "segments")
		base := rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "base")
		uri := "/" + strings.Join(segments, "/")

		first := deriveChain(uri, base)
		second := deriveChain(uri, base)

		assert.Equal(t, first, second, "derivation must be a pure function of uri and base")
	})
}

func TestDeriveFormat_NoDotMeansNoFormat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segments := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,8}`), 1, 5).Draw(t, "segments")
		uri := "/" + strings.Join(segments, "/")

		_, ok := deriveFormat(uri)

		assert.False(t, ok, "a dotless path must carry no explicit format: %q", uri)
	})
}
