package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullPath(t *testing.T) {
	assert.Equal(t, "a.pdf", getFullPath("", "a.pdf"))
	assert.Equal(t, "uploads/a.pdf", getFullPath("uploads", "a.pdf"))
	assert.Equal(t, "uploads/a.pdf", getFullPath("uploads/", "/a.pdf"))
}

func TestPublicURL(t *testing.T) {
	s := &Storage{
		Endpoint: "minio.local:9000",
		Bucket:   "careconnect",
		BasePath: "resources",
	}
	assert.Equal(t, "http://minio.local:9000/careconnect/resources/a.pdf", s.publicURL("a.pdf"))

	s.UseTLS = true
	assert.Equal(t, "https://minio.local:9000/careconnect/resources/a.pdf", s.publicURL("a.pdf"))

	s.PublicBaseURL = "https://cdn.careconnect.example/"
	assert.Equal(t, "https://cdn.careconnect.example/resources/a.pdf", s.publicURL("a.pdf"))
}

func TestNewStorageUnsupportedProvider(t *testing.T) {
	_, err := NewStorage(&Storage{Provider: "ftp"})
	assert.Error(t, err)
}
