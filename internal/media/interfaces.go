// Package media provides the local media source feeding the gallery:
// permission checking, asset enumeration, and raw content access.
//
// The package treats the media source as a directory of image and video
// files. Assets are exposed through opaque identifiers and content
// references so the sync engine never touches the filesystem directly.
package media

import (
	"context"
	"time"

	"gallerysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/media_library_mock.go -package=mock

// Asset describes one media item discovered in the local library.
type Asset struct {
	// ID is the stable identifier of the asset within the library
	// (its path relative to the library root).
	ID string

	// Ref is the opaque content reference resolved by ContentBytes.
	Ref string

	// MediaType is the kind of media the asset holds, derived from the
	// file extension.
	MediaType models.MediaType

	// CreatedAt is the asset's creation timestamp, when known.
	CreatedAt *time.Time

	// Size is the asset's content size in bytes.
	Size int64
}

// Library defines access to the local media source. Implementations
// must be safe for concurrent use: ContentBytes is called from multiple
// batch workers at once.
type Library interface {
	// RequestPermission reports whether the library's backing store may
	// be read. A false result without an error means access was denied;
	// an error means the check itself failed.
	RequestPermission(ctx context.Context) (bool, error)

	// FetchAssets enumerates all media assets, ordered by creation time
	// descending (newest first). Assets with equal timestamps keep a
	// stable name order.
	FetchAssets(ctx context.Context) ([]Asset, error)

	// ContentBytes resolves an asset content reference to its raw
	// bytes. Returns an error if the reference cannot be read.
	ContentBytes(ctx context.Context, ref string) ([]byte, error)
}
