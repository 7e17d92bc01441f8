/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package resterr defines the error taxonomy surfaced by the REST API.
package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingTenantContext is returned when code reads the tenancy
// context outside an active request scope. This is a programming error
// and must surface, never degrade to empty tenant values.
var ErrMissingTenantContext = errors.New("tenancy context is not set")

// ErrorCode names one kind of caller-visible failure.
type ErrorCode string

const (
	ValidationError      ErrorCode = "validation-error"
	MissingCredential    ErrorCode = "missing-credential"
	IdentifierNotFound   ErrorCode = "identifier-not-found"
	CredentialNotFound   ErrorCode = "credential-not-found"
	PresentationNotFound ErrorCode = "presentation-not-found"
	MessageNotFound      ErrorCode = "message-not-found"
	DIDNotFound          ErrorCode = "did-not-found"
	PolicyViolation      ErrorCode = "policy-violation"
	ConflictError        ErrorCode = "conflict"
	UpstreamFailure      ErrorCode = "upstream-failure"
	SigningTimeout       ErrorCode = "signing-timeout"
	SystemError          ErrorCode = "system-error"
)

// CustomError carries an ErrorCode next to the underlying error so the
// HTTP layer can map it without string matching.
type CustomError struct {
	Code ErrorCode
	Err  error
}

func (e *CustomError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}

	return e.Err.Error()
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg maps the error to a status code and response body.
// PolicyViolation maps to 422 rather than the historic 500: the
// condition is client-resolvable (supply an explicit issuerDid).
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	var status int

	switch e.Code {
	case ValidationError:
		status = http.StatusBadRequest
	case MissingCredential:
		status = http.StatusUnauthorized
	case IdentifierNotFound, CredentialNotFound, PresentationNotFound, MessageNotFound, DIDNotFound:
		status = http.StatusNotFound
	case PolicyViolation:
		status = http.StatusUnprocessableEntity
	case ConflictError:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	return status, map[string]interface{}{
		"code":    string(e.Code),
		"message": e.Error(),
	}
}

// NewCustomError wraps err with the given code.
func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{Code: code, Err: err}
}

// NewValidationError reports a malformed DTO, rejected before any
// repository access.
func NewValidationError(err error) *CustomError {
	return &CustomError{Code: ValidationError, Err: err}
}

// NewMissingCredentialError reports absent request identity headers.
func NewMissingCredentialError(header string) *CustomError {
	return &CustomError{
		Code: MissingCredential,
		Err:  fmt.Errorf("missing required header %q", header),
	}
}

// NewNotFoundError reports a missing record of the given kind.
func NewNotFoundError(code ErrorCode, err error) *CustomError {
	return &CustomError{Code: code, Err: err}
}

// NewPolicyViolationError reports a client-resolvable policy failure.
// The message identifies the organization or identifier involved since
// the caller-facing API surfaces this text directly.
func NewPolicyViolationError(message string) *CustomError {
	return &CustomError{Code: PolicyViolation, Err: errors.New(message)}
}

// NewConflictError reports a uniqueness violation that upsert logic did
// not absorb. Given idempotent save semantics this indicates a bug.
func NewConflictError(err error) *CustomError {
	return &CustomError{Code: ConflictError, Err: err}
}

// NewUpstreamFailureError reports a failed identity-agent call.
func NewUpstreamFailureError(err error) *CustomError {
	return &CustomError{Code: UpstreamFailure, Err: err}
}

// NewSigningTimeoutError reports an identity-agent call that exceeded
// the caller-supplied timeout.
func NewSigningTimeoutError(err error) *CustomError {
	return &CustomError{Code: SigningTimeout, Err: err}
}

// Code extracts the ErrorCode from err, or SystemError when err carries
// none.
func Code(err error) ErrorCode {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return SystemError
}
