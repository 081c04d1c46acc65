package http

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// Options carries per-request construction overrides. Any unset field falls back to
// the ambient value supplied by the TransportSource.
type Options struct {
	Method  string
	URI     string
	Params  map[string]any
	Headers map[string]string

	// RawBody overrides the ambient body when HasBody is set. The extra flag
	// distinguishes an explicit empty body from "read it from the transport".
	RawBody []byte
	HasBody bool

	// BaseURL overrides the configured path prefix stripped before path-chain
	// derivation.
	BaseURL string
}

// Request is the unified, queryable model of one inbound HTTP transaction. This
// abstraction is useful because it allows the router and dispatcher to work without
// being aware of the transport. One Request is built per transaction, consumed
// read-only, and discarded with it; the derived path chain and format token are
// cached on first access.
type Request struct {
	id      string
	method  string
	rawURI  string
	baseURL string
	headers map[string]string
	source  map[string]any
	body    *Body
	params  map[string]any

	defaultFormat string

	chain      []string
	chainDone  bool
	format     string
	formatDone bool
}

// NewRequest builds the request model for one inbound transaction. The construction
// order is fixed and must stay so, because it determines parameter precedence: base
// URL, method and URI, source parameters, headers, body, and finally the merge into
// the unified parameter map with source parameters first, headers second and body
// fields last, each step allowed to overwrite the previous one.
func NewRequest(src TransportSource, settings *Settings, opts Options) (*Request, error) {
	if settings == nil {
		settings = DefaultSettings()
	}

	r := &Request{
		id:            uuid.NewString(),
		params:        make(map[string]any),
		defaultFormat: settings.DefaultFormat,
	}

	r.baseURL = opts.BaseURL
	if r.baseURL == "" {
		r.baseURL = settings.BaseURL
	}

	r.method = opts.Method
	if r.method == "" && src != nil {
		r.method = src.Method()
	}

	r.rawURI = opts.URI
	if r.rawURI == "" && src != nil {
		r.rawURI = src.URI()
	}

	r.source = opts.Params
	if r.source == nil && src != nil {
		r.source = src.Params()
	}

	if r.source == nil {
		r.source = make(map[string]any)
	}

	rawHeaders := opts.Headers
	if rawHeaders == nil && src != nil {
		rawHeaders = src.Headers()
	}

	r.headers = normalizeHeaders(rawHeaders)

	rawBody := opts.RawBody

	if !opts.HasBody && src != nil {
		ambient, err := src.Body()
		if err != nil {
			return nil, err
		}

		rawBody = ambient
	}

	r.body = decodeBody(rawBody)

	if err := r.mergeParameters(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Request) mergeParameters() error {
	if err := r.AddParameters(r.source, true); err != nil {
		return err
	}

	if err := r.AddParameters(r.headers, true); err != nil {
		return err
	}

	// List and scalar bodies carry no named fields to merge.
	if r.body.Kind() == KindObject {
		return r.AddParameters(r.body.Fields(), true)
	}

	return nil
}

// ID returns the identifier assigned to this transaction at construction.
func (r *Request) ID() string {
	return r.id
}

// Method returns the HTTP verb token of the transaction.
func (r *Request) Method() string {
	return r.method
}

// URI returns the untouched requested URI.
func (r *Request) URI() string {
	return r.rawURI
}

// BaseURL returns the path prefix stripped before path-chain derivation.
func (r *Request) BaseURL() string {
	return r.baseURL
}

// Headers returns the canonical header mapping.
func (r *Request) Headers() map[string]string {
	return r.headers
}

// Header returns a single header value by its canonical name.
func (r *Request) Header(name string) string {
	return r.headers[name]
}

// Body returns the structured value decoded from the raw body. It is never nil.
func (r *Request) Body() *Body {
	return r.body
}

// Params returns the unified parameter mapping merged from source parameters,
// headers and body fields.
func (r *Request) Params() map[string]any {
	return r.params
}

// Param looks up a single parameter by name.
func (r *Request) Param(name string) any {
	return r.params[name]
}

// ParamOr looks up a single parameter by name, falling back to def when absent.
func (r *Request) ParamOr(name string, def any) any {
	if value, ok := r.params[name]; ok {
		return value
	}

	return def
}

// PathChain returns the ordered path segments of the requested URI with the query
// string, format suffix and base URL stripped. The chain is derived once per
// request; a Request is owned by a single transaction, so the cache needs no lock.
func (r *Request) PathChain() []string {
	if !r.chainDone {
		r.chain = deriveChain(r.rawURI, r.baseURL)
		r.chainDone = true
	}

	return r.chain
}

// Format returns the requested response-format token, falling back to the
// configured default when the URI carries no suffix.
func (r *Request) Format() string {
	if !r.formatDone {
		format, ok := deriveFormat(r.rawURI)
		if !ok {
			format = r.defaultFormat
		}

		r.format = format
		r.formatDone = true
	}

	return r.format
}

// Bind decodes the unified parameter map into target, which must be a pointer to a
// struct or map. Fields are matched by the `param` tag, with weak typing so header
// strings fill numeric fields.
func (r *Request) Bind(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "param",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(r.params)
}

// Summary serializes the request facts relevant for logging and debugging into a
// generic structured representation.
func (r *Request) Summary() map[string]any {
	return map[string]any{
		"id":     r.id,
		"method": r.method,
		"uri":    r.rawURI,
		"params": r.params,
	}
}

// Log returns the request summary as a log payload.
func (r *Request) Log() *RequestLog {
	return &RequestLog{
		ID:     r.id,
		Method: r.method,
		URI:    r.rawURI,
		Params: r.params,
	}
}

// RequestLog represents a log entry for one normalized request.
type RequestLog struct {
	ID     string         `json:"id,omitempty"`
	Method string         `json:"method,omitempty"`
	URI    string         `json:"uri,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

func (rl *RequestLog) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "\u001B[38;5;8m%s\u001B[0m %-7s %s %d params\n", rl.ID, rl.Method, rl.URI, len(rl.Params))
}
