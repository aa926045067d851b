package store

import "errors"

var ErrInvalidQuality = errors.New("invalid sync quality value")
