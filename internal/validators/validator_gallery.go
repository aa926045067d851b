package validators

import (
	"context"
	"time"

	"gallerysync/models"
)

const (
	FieldContent   = "content"
	FieldCreatedAt = "created_at"
	FieldCloudURL  = "cloud_url"
)

type GalleryValidator struct {
}

// NewGalleryValidator validates the cloud service's inbound request
// payloads: parsed upload submissions and delete requests.
func NewGalleryValidator() Validator {
	return &GalleryValidator{}
}

func (v *GalleryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadSubmission:
		return v.validateUploadSubmission(ctx, value, fields...)
	case *models.UploadSubmission:
		return v.validateUploadSubmission(ctx, *value, fields...)

	case models.DeleteRequest:
		return v.validateDeleteRequest(ctx, value, fields...)
	case *models.DeleteRequest:
		return v.validateDeleteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GalleryValidator) validateUploadSubmission(_ context.Context, submission models.UploadSubmission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if len(submission.Content) == 0 {
				return ErrEmptyContent
			}
		case FieldCreatedAt:
			if submission.CreatedAt == "" {
				continue
			}
			if _, err := time.Parse(time.RFC3339, submission.CreatedAt); err != nil {
				return ErrInvalidCreatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GalleryValidator) validateDeleteRequest(_ context.Context, request models.DeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCloudURL}
	}

	for _, f := range fields {
		switch f {
		case FieldCloudURL:
			if request.CloudURL == "" {
				return ErrMissingCloudURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
