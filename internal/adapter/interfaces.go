// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with
// the cloud storage service.
//
// The primary abstraction is [CloudAdapter], which decouples the sync
// engine from HTTP mechanics. The package ships a resty-based
// implementation ([NewHTTPCloudAdapter]) that maps transport failures
// and non-2xx responses onto the [models.SyncError] taxonomy, so the
// engine can classify failures without inspecting status codes.
package adapter

import (
	"context"
	"time"

	"gallerysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// UploadItemRequest carries one item's content to the cloud.
type UploadItemRequest struct {
	// ItemID is the stable identifier of the uploaded item.
	ItemID string

	// FileName is the original asset name sent as the multipart file name.
	FileName string

	// Content is the raw asset bytes. Must be non-empty.
	Content []byte

	// CreatedAt is the optional creation timestamp forwarded as request
	// metadata.
	CreatedAt *time.Time
}

// CloudAdapter defines transport-agnostic communication with the cloud
// storage service. Implementations are stateless beyond configuration
// and must be safe for concurrent use: one batch issues many calls at
// once. No call mutates engine state; results are returned to the
// caller and applied there.
//
// Every method resolves within the configured request timeout or when
// ctx is cancelled; calls never block indefinitely.
type CloudAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// requests. An empty token removes the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// UploadItem sends one item's content as a multipart request and
	// returns the remote location the server assigned to it. When the
	// 2xx response body carries no parseable URL, a deterministic
	// location derived from the item ID is returned instead.
	//
	// Fails with kind InvalidContent when req.Content is empty (no
	// request is made), Network on transport failure, and UploadFailed
	// with the server-supplied detail on a non-2xx response.
	UploadItem(ctx context.Context, req UploadItemRequest) (string, error)

	// ListItems fetches the server's current listing. An empty listing
	// is a valid success. Fails with kind Network on transport failure
	// and DownloadFailed on a non-2xx response or undecodable body.
	ListItems(ctx context.Context) ([]models.RemoteItem, error)

	// DeleteItem removes previously uploaded content identified by its
	// remote location. Fails with kind InvalidAsset when cloudURL is
	// empty (no request is made), Network on transport failure, and
	// DeleteFailed on a non-2xx response.
	DeleteItem(ctx context.Context, cloudURL string) error
}
