package entities

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Error detail types.
const (
	ErrorTypeValidation = "validation"
	ErrorTypeDecode     = "decode"
	ErrorTypeSchema     = "schema"
	ErrorTypeInternal   = "internal"
)

// ErrorDetail is the flattened, serializable form of a failed call: what
// kind of failure, which argument or document, and the message.
type ErrorDetail struct {
	Details map[string]any `json:"details,omitempty"`
	Type    string         `json:"type"`
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message"`
}

// NewErrorDetail creates an ErrorDetail of errorType.
func NewErrorDetail(errorType, message string) *ErrorDetail {
	return &ErrorDetail{Type: errorType, Message: message}
}

// Error renders "type [code]: message". Internal errors render the message only.
func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	if e.Type == "" || e.Type == ErrorTypeInternal {
		return e.Message
	}
	if e.Code != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// WithDetails attaches details and returns e.
func (e *ErrorDetail) WithDetails(details map[string]any) *ErrorDetail {
	e.Details = details
	return e
}

// WithCode sets the code and returns e.
func (e *ErrorDetail) WithCode(code string) *ErrorDetail {
	e.Code = code
	return e
}

// LogValue renders the detail as a group so debug logs carry the argument,
// field and index of a rejection as separate attributes.
func (e *ErrorDetail) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}
	attrs := []slog.Attr{slog.String("type", e.Type)}
	if e.Code != "" {
		attrs = append(attrs, slog.String("code", e.Code))
	}
	attrs = append(attrs, slog.String("message", e.Message))
	for _, k := range slices.Sorted(maps.Keys(e.Details)) {
		attrs = append(attrs, slog.Any(k, e.Details[k]))
	}
	return slog.GroupValue(attrs...)
}
