package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// TransportSource supplies the ambient transport values a Request falls back to
// when a construction override is not given. Production code passes an adapter over
// the real transport; tests pass a static fake. Every method is read at most once,
// during construction.
type TransportSource interface {
	Method() string
	URI() string
	Params() map[string]any
	Headers() map[string]string
	Body() ([]byte, error)
}

// netSource adapts an inbound net/http request to the TransportSource contract.
type netSource struct {
	req *http.Request
}

// NewNetSource wraps an inbound net/http request as the ambient transport source.
func NewNetSource(r *http.Request) TransportSource {
	return &netSource{req: r}
}

func (s *netSource) Method() string {
	return s.req.Method
}

func (s *netSource) URI() string {
	if s.req.RequestURI != "" {
		return s.req.RequestURI
	}

	return s.req.URL.RequestURI()
}

// Params merges route variables, query values and cookies into the combined
// request-parameter mapping. Route variables win over query values, query values
// over cookies.
func (s *netSource) Params() map[string]any {
	params := make(map[string]any)

	for _, c := range s.req.Cookies() {
		params[c.Name] = c.Value
	}

	for key, values := range s.req.URL.Query() {
		params[key] = values[0]
	}

	for key, value := range mux.Vars(s.req) {
		params[key] = value
	}

	return params
}

// Headers presents the header set in the transport's raw form, i.e. CGI-style
// meta-variables: Accept-Encoding becomes HTTP_ACCEPT_ENCODING, with the content
// type and length keys kept unprefixed. Header normalization undoes this transform.
func (s *netSource) Headers() map[string]string {
	raw := make(map[string]string, len(s.req.Header))

	for name, values := range s.req.Header {
		key := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))

		switch key {
		case "CONTENT_TYPE", "CONTENT_LENGTH":
			raw[key] = values[0]
		default:
			raw[transportHeaderPrefix+key] = values[0]
		}
	}

	return raw
}

// Body reads the request body once and restores it so later consumers of the
// underlying request still see it.
func (s *netSource) Body() ([]byte, error) {
	if s.req.Body == nil {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(s.req.Body)
	if err != nil {
		return nil, err
	}

	s.req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	return bodyBytes, nil
}
