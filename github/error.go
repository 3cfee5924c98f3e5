// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package github

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors forming the base of the error system.
//
// Errors returned by this package can be tested against these errors using
// errors.Is.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotExist         = errors.New("resource does not exist")
	ErrUnprocessable    = errors.New("request could not be processed")
)

// silentWrap is a wrapper whose wrapped error plays no part in the message,
// used to classify simple errors as one of the base errors above.
type silentWrap struct {
	message string
	err     error
}

func (w silentWrap) Error() string {
	return w.message
}

func (w silentWrap) Unwrap() error {
	return w.err
}

// newInvalidArgumentErrorf returns an error that formats as the given text
// but unwraps as an ErrInvalidArgument. Argument validation happens before
// any request leaves the client, so these errors never carry a status code.
func newInvalidArgumentErrorf(message string, args ...any) error {
	return silentWrap{message: fmt.Sprintf(message, args...), err: ErrInvalidArgument}
}

// APIError is returned for every response outside the 2xx range. It carries
// the server's message verbatim and unwraps to one of the base errors for
// the well-known status codes.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.URL, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrNotExist
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	}
	return nil
}
