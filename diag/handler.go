package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Handler collects the recoverable diagnostics of one parse. Grammar rules
// that skip a malformed element report it here and keep going; fatal errors
// are returned through the call chain instead.
type Handler struct {
	diagnostics []*ParseError
}

// NewHandler returns an empty sink.
func NewHandler() *Handler {
	return &Handler{}
}

// Emit records err in emission order. Values that are not a *ParseError are
// wrapped with a zero span so the sink never drops a report. A nil err is
// ignored.
func (h *Handler) Emit(err error) {
	if err == nil {
		return
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		h.diagnostics = append(h.diagnostics, pe)
		return
	}

	h.diagnostics = append(h.diagnostics, &ParseError{Message: err.Error()})
}

// Diagnostics returns the collected diagnostics in emission order.
func (h *Handler) Diagnostics() []*ParseError {
	return h.diagnostics
}

// Len reports how many diagnostics have been collected.
func (h *Handler) Len() int {
	return len(h.diagnostics)
}

// Err folds the collected diagnostics into a single error value: nil when
// the sink is empty, the diagnostic itself when there is exactly one, and
// an *ErrorList otherwise.
func (h *Handler) Err() error {
	switch len(h.diagnostics) {
	case 0:
		return nil
	case 1:
		return h.diagnostics[0]
	default:
		return &ErrorList{Errors: h.diagnostics}
	}
}

// ErrorList aggregates multiple diagnostics into one error value.
type ErrorList struct {
	Errors []*ParseError
}

func (e *ErrorList) Error() string {
	if len(e.Errors) == 0 {
		return "no parse errors"
	}

	var sb strings.Builder

	sb.WriteString("multiple parse errors:")

	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %s", i+1, err.Error())
	}

	return sb.String()
}

// Unwrap exposes the individual diagnostics to errors.Is and errors.As.
func (e *ErrorList) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}

	return errs
}
