// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gallerysync/models"
)

func validUploadSubmission() models.UploadSubmission {
	return models.UploadSubmission{
		ID:        "photo-1",
		FileName:  "photo-1.jpg",
		Content:   []byte("jpeg bytes"),
		CreatedAt: "2026-08-30T10:00:00Z",
	}
}

// ---------------------------------------------------------------------------
// TestNewGalleryValidator
// ---------------------------------------------------------------------------

func TestNewGalleryValidator(t *testing.T) {
	v := NewGalleryValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewGalleryValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("UploadSubmission value", func(t *testing.T) {
		s := validUploadSubmission()
		require.NoError(t, v.Validate(ctx, s))
	})

	t.Run("UploadSubmission pointer", func(t *testing.T) {
		s := validUploadSubmission()
		require.NoError(t, v.Validate(ctx, &s))
	})

	t.Run("DeleteRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.DeleteRequest{CloudURL: "http://cloud/files/photo-1"}))
	})

	t.Run("DeleteRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.DeleteRequest{CloudURL: "http://cloud/files/photo-1"}))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_UploadSubmission
// ---------------------------------------------------------------------------

func TestValidate_UploadSubmission(t *testing.T) {
	v := NewGalleryValidator()
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		s := validUploadSubmission()
		s.Content = nil
		require.ErrorIs(t, v.Validate(ctx, s), ErrEmptyContent)
	})

	t.Run("missing created_at is allowed", func(t *testing.T) {
		s := validUploadSubmission()
		s.CreatedAt = ""
		require.NoError(t, v.Validate(ctx, s))
	})

	t.Run("malformed created_at", func(t *testing.T) {
		s := validUploadSubmission()
		s.CreatedAt = "yesterday"
		require.ErrorIs(t, v.Validate(ctx, s), ErrInvalidCreatedAt)
	})

	t.Run("field scoping skips unrequested checks", func(t *testing.T) {
		s := validUploadSubmission()
		s.Content = nil
		require.NoError(t, v.Validate(ctx, s, FieldCreatedAt))
	})

	t.Run("unknown field", func(t *testing.T) {
		s := validUploadSubmission()
		require.ErrorIs(t, v.Validate(ctx, s, "checksum"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_DeleteRequest
// ---------------------------------------------------------------------------

func TestValidate_DeleteRequest(t *testing.T) {
	v := NewGalleryValidator()
	ctx := context.Background()

	t.Run("missing cloud URL", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.DeleteRequest{}), ErrMissingCloudURL)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := models.DeleteRequest{CloudURL: "http://cloud/files/photo-1"}
		require.ErrorIs(t, v.Validate(ctx, req, "owner"), ErrUnknownField)
	})
}
