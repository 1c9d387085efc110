// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoOwnerInContext is returned by file handlers reached without the
	// auth middleware.
	ErrNoOwnerInContext = errors.New("no owner in request context")

	// ErrDocumentTooLarge is returned when a request body exceeds
	// maxDocumentSize.
	ErrDocumentTooLarge = errors.New("document is too large")
)
