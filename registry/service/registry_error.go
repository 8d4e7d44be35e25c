package service

import (
	"errors"
	"fmt"
	"strings"
)

// Codes carried in the "code" field of every API error body.
const (
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound is returned for an unknown node id and for unknown routes.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter is returned when a registration, a status value or a request does not validate.
	ErrBadParameter = "bad_parameter"
)

// RegistryError is the error shared by the directory, the stores and the HTTP layer.
// NodeID is set when a lookup missed a node; Field names the input that failed validation.
// Both are sent to API consumers next to Code so they need not parse Message.
type RegistryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"node_id,omitempty"`
	Field   string `json:"field,omitempty"`
	// Inner is never sent to API consumers.
	Inner error `json:"-"`
}

// NewNodeNotFoundError reports that no node is registered under id.
func NewNodeNotFoundError(id string) *RegistryError {
	return &RegistryError{
		Code:    ErrEntityNotFound,
		Message: fmt.Sprintf("node %q not found", id),
		NodeID:  id,
	}
}

// NewBadParameterError reports that field failed validation. An empty field means the whole request.
func NewBadParameterError(field, message string, inner error) *RegistryError {
	return &RegistryError{
		Code:    ErrBadParameter,
		Message: message,
		Field:   field,
		Inner:   inner,
	}
}

// NewInternalServerError wraps a store or infrastructure failure. When inner already carries a
// RegistryError, for example a not-found from the store, that error is returned unchanged.
func NewInternalServerError(message string, inner error) *RegistryError {
	if regErr := ToRegistryError(inner); regErr != nil {
		return regErr
	}
	return &RegistryError{Code: ErrInternalServerError, Message: message, Inner: inner}
}

func (e *RegistryError) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	if e.Field != "" {
		b.WriteString(" [" + e.Field + "]")
	}
	b.WriteString(" " + e.Message)
	if e.Inner != nil {
		b.WriteString(": " + e.Inner.Error())
	}
	return b.String()
}

func (e *RegistryError) Unwrap() error {
	return e.Inner
}

// ToRegistryError returns the first RegistryError in err's chain, or nil.
func ToRegistryError(err error) *RegistryError {
	var e *RegistryError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func hasCode(err error, code string) bool {
	regErr := ToRegistryError(err)
	return regErr != nil && regErr.Code == code
}

func IsInternalServerError(err error) bool {
	return hasCode(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return hasCode(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return hasCode(err, ErrBadParameter)
}
