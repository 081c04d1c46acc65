// Package http provides the request-normalization core of the Strut framework. It ingests one
// inbound HTTP transaction and exposes a single, queryable model used for routing and dispatch.
package http

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorInvalidParam represents an error for invalid parameter names.
type ErrorInvalidParam struct {
	Params []string `json:"param,omitempty"` // Params contains the list of invalid parameter names.
}

func (e ErrorInvalidParam) Error() string {
	return fmt.Sprintf("'%d' invalid parameter(s): %s", len(e.Params), strings.Join(e.Params, ", "))
}

func (ErrorInvalidParam) StatusCode() int {
	return http.StatusBadRequest
}

// ErrorInvalidSource represents an error for a parameter source that cannot be iterated,
// i.e. a scalar passed where a map or struct is required.
type ErrorInvalidSource struct {
	Kind string
}

func (e ErrorInvalidSource) Error() string {
	return fmt.Sprintf("parameter source of kind %s is not iterable", e.Kind)
}

func (ErrorInvalidSource) StatusCode() int {
	return http.StatusBadRequest
}
