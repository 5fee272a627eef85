package wizard

import (
	"context"
	"mime/multipart"

	"venuehub/internal/domain/listing"
)

// ListingCreator submits the flattened answers of a completed wizard.
type ListingCreator interface {
	Create(ctx context.Context, ownerID int64, p listing.Payload) (*listing.Listing, error)
}

// ImageIngestor stores uploaded images and returns opaque references to them.
type ImageIngestor interface {
	Ingest(ctx context.Context, ownerID int64, files []*multipart.FileHeader) ([]string, error)
}
