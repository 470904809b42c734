// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// forum server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgAuthenticationRequired is returned when an operation requires a
	// valid session and the request carries none, or the session cookie is
	// expired or cannot be verified.
	MsgAuthenticationRequired = "authentication required"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgThreadNotFound is returned when the requested thread does not
	// exist.
	MsgThreadNotFound = "thread not found"

	// MsgInvalidParentComment is returned when a reply names a parent
	// comment that does not exist or belongs to a different thread.
	MsgInvalidParentComment = "invalid parent comment"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"
)
