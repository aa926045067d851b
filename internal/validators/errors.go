package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyContent     = errors.New("content is required")
	ErrInvalidCreatedAt = errors.New("invalid created_at timestamp")
	ErrMissingCloudURL  = errors.New("cloud URL is required")
)
