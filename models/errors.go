package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a sync failure so that callers can react to the
// category without parsing the detail string.
type ErrorKind int

const (
	// ErrKindInvalidContent means the local asset's bytes could not be
	// read or were empty, so no upload was attempted.
	ErrKindInvalidContent ErrorKind = iota + 1

	// ErrKindNetwork means the request never produced a server response
	// (DNS failure, connection refused, timeout, cancelled context).
	ErrKindNetwork

	// ErrKindUploadFailed means the server rejected an upload with a
	// non-2xx status.
	ErrKindUploadFailed

	// ErrKindDownloadFailed means the server rejected the listing
	// request with a non-2xx status.
	ErrKindDownloadFailed

	// ErrKindDeleteFailed means the server rejected a delete with a
	// non-2xx status.
	ErrKindDeleteFailed

	// ErrKindInvalidAsset means a precondition was violated, e.g. a
	// delete was requested for an item that has no cloud location.
	ErrKindInvalidAsset
)

// String returns the stable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindInvalidContent:
		return "invalid content"
	case ErrKindNetwork:
		return "network error"
	case ErrKindUploadFailed:
		return "upload failed"
	case ErrKindDownloadFailed:
		return "download failed"
	case ErrKindDeleteFailed:
		return "delete failed"
	case ErrKindInvalidAsset:
		return "invalid asset"
	default:
		return "unknown"
	}
}

// SyncError is the failure payload attached to a gallery item and
// surfaced by batch operations. It is a tagged value: Kind keeps the
// taxonomy closed and testable, Detail carries the server-supplied or
// generated message.
type SyncError struct {
	// Kind is the failure category.
	Kind ErrorKind `json:"kind"`

	// Detail is the human-readable failure description.
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is makes errors.Is match two SyncErrors by kind only, so sentinel
// values like NewSyncError(ErrKindNetwork, "") can be used as targets.
func (e *SyncError) Is(target error) bool {
	t, ok := target.(*SyncError)
	return ok && t.Kind == e.Kind
}

// NewSyncError builds a SyncError of the given kind and detail.
func NewSyncError(kind ErrorKind, detail string) *SyncError {
	return &SyncError{Kind: kind, Detail: detail}
}

// AsSyncError coerces err into a *SyncError. A *SyncError is returned
// unchanged; any other error becomes a SyncError of fallback kind with
// err's message as detail. Returns nil for a nil err.
func AsSyncError(err error, fallback ErrorKind) *SyncError {
	if err == nil {
		return nil
	}
	var se *SyncError
	if errors.As(err, &se) {
		return se
	}
	return &SyncError{Kind: fallback, Detail: err.Error()}
}
