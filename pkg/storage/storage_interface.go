package storage

import (
	"mime/multipart"

	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

// Provider is implemented by every blob storage backend.
type Provider interface {
	PutObject(ctx *ctx.Context, objectName string, file *multipart.FileHeader, contentType string) (string, error)
	GetObject(ctx *ctx.Context, objectName string) ([]byte, error)
	Delete(ctx *ctx.Context, objectName string) error
	// PublicURL returns the externally reachable URL for a stored object.
	PublicURL(objectName string) string
}
