// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across
// the gallerysync cloud service handlers and middleware.
//
// All Msg* constants are human-readable message strings written into
// HTTP response bodies or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording
// throughout the API; the sync client surfaces them verbatim as the
// failure detail.
package app

const (
	// MsgInvalidMultipartBody is returned when an upload request's body
	// cannot be parsed as multipart form data.
	MsgInvalidMultipartBody = "invalid multipart body"

	// MsgMissingFileField is returned when an upload request carries no
	// `file` form field.
	MsgMissingFileField = "missing `file` field"

	// MsgEmptyContent is returned when the uploaded file resolves to
	// zero bytes.
	MsgEmptyContent = "empty content"

	// MsgErrorReadingContent is returned when the server fails to read
	// the uploaded file stream.
	MsgErrorReadingContent = "error reading uploaded content"

	// MsgInvalidCreatedAt is returned when the `created_at` form field
	// is present but not an RFC 3339 timestamp.
	MsgInvalidCreatedAt = "invalid `created_at` timestamp"

	// MsgInvalidJSONProvided is returned when a request body cannot be
	// decoded as JSON.
	MsgInvalidJSONProvided = "invalid JSON was passed"

	// MsgMissingCloudURL is returned when a delete request omits the
	// `cloudURL` field.
	MsgMissingCloudURL = "missing `cloudURL` field"

	// MsgObjectNotFound is returned when a delete or file request names
	// a remote location or ID the store does not hold.
	MsgObjectNotFound = "object not found"
)
