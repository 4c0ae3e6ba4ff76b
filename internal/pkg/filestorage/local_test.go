package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	base := t.TempDir()
	ls, err := NewLocalStorage(base, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	key, err := ls.SaveFileWithPath(multipartHeader(t, "Face.JPG", []byte("jpeg-bytes")), "students")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "students/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, "http://localhost:8080/uploads/"+key, ls.URL(key))

	stored, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))

	require.NoError(t, ls.DeleteFile(key))
	_, err = os.Stat(filepath.Join(base, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, ls.DeleteFile(key), "second delete is a no-op")
}

func TestLocalStorage_KeysStayInsideBase(t *testing.T) {
	base := t.TempDir()
	ls, err := NewLocalStorage(filepath.Join(base, "store"), "")
	require.NoError(t, err)

	outside := filepath.Join(base, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))

	require.NoError(t, ls.DeleteFile("../keep.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)

	key, err := ls.SaveFileWithPath(multipartHeader(t, "a.png", []byte("png")), "../../students")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "students/"))
	assert.Equal(t, "/uploads/"+key, ls.URL(key))
}
