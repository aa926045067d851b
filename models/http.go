package models

import "time"

// UploadResponse is the body the cloud service returns for a successful
// upload. When the body is not parseable JSON or URL is empty, the
// client falls back to a deterministic location derived from the item ID.
type UploadResponse struct {
	// URL is the remote location assigned to the uploaded content.
	URL string `json:"url"`
}

// DeleteRequest asks the cloud service to remove previously uploaded
// content.
type DeleteRequest struct {
	// CloudURL is the remote location of the content to remove.
	CloudURL string `json:"cloudURL"`
}

// UploadSubmission is the parsed form of a multipart upload request,
// as seen by the cloud service before the object is stored. CreatedAt
// holds the raw form value; it must be empty or RFC 3339.
type UploadSubmission struct {
	ID        string
	FileName  string
	Content   []byte
	CreatedAt string
}

// RemoteItem is one entry of the cloud listing.
type RemoteItem struct {
	// ID is the server-side identifier of the item. Matches the local
	// item ID when the item was uploaded by this client.
	ID string `json:"id"`

	// URL is the remote location of the item's content.
	URL string `json:"url"`

	// ContentType is the MIME type reported by the server, if any.
	ContentType string `json:"content_type,omitempty"`

	// Size is the stored content size in bytes.
	Size int64 `json:"size"`

	// CreatedAt is the creation timestamp attached during upload.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ListingResponse is the cloud service's answer to a listing request.
// An empty Items slice is a valid successful listing.
type ListingResponse struct {
	// Items is the ordered listing of stored remote items.
	Items []RemoteItem `json:"items"`

	// Length is the number of entries in Items. Provided so the client
	// can pre-allocate or validate the response without iterating.
	Length int `json:"length"`
}

// ErrorResponse is the JSON error body the cloud service attaches to
// non-2xx responses. The client uses Error as the failure detail when
// the body parses; otherwise the raw body text is used.
type ErrorResponse struct {
	// Error is the server-supplied failure description.
	Error string `json:"error"`
}
