// Package services defines the business logic for presence, messages, and
// the chat composition root. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import "errors"

var (
	// ErrNameInvalid is returned when a user name is empty, too long, or
	// contains anything other than letters.
	ErrNameInvalid = errors.New("name must contain only letters")

	// ErrNameTaken is returned when a join attempts to claim a name whose
	// current holder is still within the active window.
	ErrNameTaken = errors.New("name is taken by an active user")

	// ErrLanguageInvalid is returned when a language code is not one of the
	// supported codes.
	ErrLanguageInvalid = errors.New("unsupported language code")

	// ErrEmptyBody is returned when a message body is empty after trimming.
	ErrEmptyBody = errors.New("message body is empty")

	// ErrBodyTooLong is returned when a message body exceeds the maximum
	// configured length.
	ErrBodyTooLong = errors.New("message body too long")

	// ErrMessageNotFound indicates that the requested message does not exist.
	ErrMessageNotFound = errors.New("message not found")
)
