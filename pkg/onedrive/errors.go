// Package onedrive (errors.go) defines the error taxonomy of the SDK and the
// sentinel check that every decoded response passes through before it is
// mapped into an entity.
package onedrive

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrRequestFailed     = errors.New("request failed")
	ErrDecodingFailed    = errors.New("decoding failed")
	ErrNoContent         = errors.New("no content")
	ErrServiceError      = errors.New("service error")
	ErrMappingFailed     = errors.New("mapping failed")
	ErrOperationFailed   = errors.New("operation failed")
	ErrUnknownSharedWith = errors.New("unknown shared_with access level")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// ServiceError is a failure reported by the provider inside a response body.
// Code and Message are the provider's values, unmodified.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("onedrive service error %q: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrServiceError) match any *ServiceError.
func (e *ServiceError) Is(target error) bool {
	return target == ErrServiceError
}

// MappingError reports a decoded payload that does not have the shape the
// mapper for Kind expects.
type MappingError struct {
	Kind  string
	Field string
	Err   error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s field %q: %v", e.Kind, e.Field, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrMappingFailed) match any *MappingError.
func (e *MappingError) Is(target error) bool {
	return target == ErrMappingFailed
}

// CheckForError inspects a decoded response for the provider's error
// envelope, {"error": {"code": ..., "message": ...}}. The presence of the
// top-level "error" key is definitive: it is reported even when the HTTP
// status was 2xx and even when the envelope is malformed.
func CheckForError(tree Tree) error {
	raw, ok := tree["error"]
	if !ok {
		return nil
	}

	svcErr := &ServiceError{}
	switch envelope := raw.(type) {
	case map[string]any:
		svcErr.Code, _ = envelope["code"].(string)
		svcErr.Message, _ = envelope["message"].(string)
	case string:
		// OAuth endpoints sometimes flatten the envelope.
		svcErr.Code = envelope
		svcErr.Message, _ = tree["error_description"].(string)
	}
	return svcErr
}
