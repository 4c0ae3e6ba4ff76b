package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates basePath if needed. baseURL is the public prefix
// the directory is served under (for example http://host/uploads).
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFileWithPath saves a file to a specified subdirectory
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file uploaded")
	}
	subPath = strings.Trim(path.Clean("/"+filepath.ToSlash(subPath)), "/")

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	key := path.Join(subPath, name)
	logger.Info().Str("filename", fileHeader.Filename).Str("key", key).Msg("File saved")
	return key, nil
}

// DeleteFile removes a stored file. Keys escaping the base directory are rejected.
func (ls *LocalStorage) DeleteFile(key string) error {
	if key == "" {
		return nil
	}
	clean := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(key)), "/")
	if clean == "" || clean == "." {
		return fmt.Errorf("invalid file key: %q", key)
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(clean))
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// URL returns the public address of a stored key.
func (ls *LocalStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	if ls.baseURL == "" {
		return "/uploads/" + key
	}
	return ls.baseURL + "/" + key
}
