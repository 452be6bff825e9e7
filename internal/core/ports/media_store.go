package ports

import "context"

// MediaStore is the external image host: it accepts raw bytes and returns a
// canonical absolute URL. Raw image bytes are never persisted locally.
type MediaStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
