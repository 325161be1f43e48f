package dota2api

import (
	"fmt"
)

// MissingCredentialError reports that no API key was available when the client
// was constructed.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("dota2api: no API key given and %s is not set", e.EnvVar)
}
func (e *MissingCredentialError) Is(tgt error) bool {
	_, ok := tgt.(*MissingCredentialError)
	return ok
}

// MissingParameterError reports that a required endpoint parameter was absent.
// It is returned before any request is built or sent.
type MissingParameterError struct {
	Endpoint string
	Param    string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("dota2api: %s: required parameter %s is missing", e.Endpoint, e.Param)
}
func (e *MissingParameterError) Is(tgt error) bool {
	_, ok := tgt.(*MissingParameterError)
	return ok
}

// TransportError reports a failure to reach the upstream service or to read
// its answer: connection or DNS failures, an unreadable body, or a body that
// does not parse as JSON. The message names the endpoint, never the full URL,
// so the API key cannot leak into logs.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dota2api: %s: %v", e.Endpoint, e.Err)
}
func (e *TransportError) Unwrap() error {
	return e.Err
}
func (e *TransportError) Is(tgt error) bool {
	_, ok := tgt.(*TransportError)
	return ok
}

// APIError reports a failure signalled by the upstream service itself, either
// as a non-2xx HTTP status or as an error status embedded in the JSON body.
// Status is the body-level status code when present (zero otherwise).
type APIError struct {
	Endpoint   string
	HTTPStatus int
	Status     int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("dota2api: %s: upstream status %d: %s", e.Endpoint, e.Status, e.Detail)
	}
	if e.Detail != "" {
		return fmt.Sprintf("dota2api: %s: HTTP %d: %s", e.Endpoint, e.HTTPStatus, e.Detail)
	}
	return fmt.Sprintf("dota2api: %s: HTTP %d", e.Endpoint, e.HTTPStatus)
}
func (e *APIError) Is(tgt error) bool {
	_, ok := tgt.(*APIError)
	return ok
}

// MissingFieldError reports a lookup of a field that is not present in a
// Response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("dota2api: response has no field %q", e.Field)
}
func (e *MissingFieldError) Is(tgt error) bool {
	_, ok := tgt.(*MissingFieldError)
	return ok
}

// FieldKindError reports a typed getter applied to a field of another JSON
// kind.
type FieldKindError struct {
	Field string
	Want  Kind
	Got   Kind
}

func (e *FieldKindError) Error() string {
	return fmt.Sprintf("dota2api: field %q is %s, not %s", e.Field, e.Got, e.Want)
}
func (e *FieldKindError) Is(tgt error) bool {
	_, ok := tgt.(*FieldKindError)
	return ok
}
