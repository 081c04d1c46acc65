package http

import "net/http"

// Status is the response status a handler intends for the current transaction.
type Status struct {
	Code   int
	Reason string
}

// HasStatus is the capability contract through which the response layer reads, and
// handlers set, the transaction status.
type HasStatus interface {
	Status() *Status
	SetStatus(status *Status)
}

// StatusHolder is the owned status field a handler-like component embeds to satisfy
// HasStatus. The zero value is ready to use; the first access initializes the
// default 200 status.
type StatusHolder struct {
	status *Status
}

func (h *StatusHolder) Status() *Status {
	if h.status == nil {
		h.status = &Status{Code: http.StatusOK, Reason: http.StatusText(http.StatusOK)}
	}

	return h.status
}

func (h *StatusHolder) SetStatus(status *Status) {
	h.status = status
}
