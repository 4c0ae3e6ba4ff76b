package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath and returns its
	// storage key (subPath/generated-name.ext).
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file by key. Missing files are not an error.
	DeleteFile(key string) error

	// URL returns the public address of a stored key.
	URL(key string) string
}
