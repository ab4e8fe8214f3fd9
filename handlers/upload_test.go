package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/seosites/seosites/backend/go-api/internal/files"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) upload(t *testing.T, field, filename, contentType string, data []byte, tok string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *testEnv) fileCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(e.files.Dir())
	require.NoError(t, err)
	return len(entries)
}

func TestUploadImageAndServe(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleEditor)

	w := e.upload(t, files.FieldName, "logo.png", "image/png", pngBytes, tok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var up files.Uploaded
	decodeData(t, w, &up)
	assert.True(t, strings.HasPrefix(up.Filename, "image-"))
	assert.True(t, strings.HasSuffix(up.Filename, ".png"))
	assert.Equal(t, files.PublicPrefix+up.Filename, up.URL)
	assert.True(t, e.hasFile(up.Filename))

	w = e.do(http.MethodGet, up.URL, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())

	w = e.do(http.MethodDelete, "/api/upload/"+up.Filename, "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, e.hasFile(up.Filename))

	w = e.do(http.MethodDelete, "/api/upload/"+up.Filename, "", tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", decode(t, w).Message)

	w = e.do(http.MethodGet, up.URL, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadedMarkupServedAsImage(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleEditor)
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00<script>alert(document.cookie)</script>")

	w := e.upload(t, files.FieldName, "x.html", "image/gif", gif, tok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var up files.Uploaded
	decodeData(t, w, &up)
	assert.True(t, strings.HasSuffix(up.Filename, ".gif"), up.Filename)

	w = e.do(http.MethodGet, up.URL, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, gif, w.Body.Bytes())
}

func TestUploadRejectsNonImage(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)

	w := e.upload(t, files.FieldName, "notes.txt", "text/plain", []byte("hello world"), tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only image files are allowed", decode(t, w).Message)

	// declared as an image, bytes are not
	w = e.upload(t, files.FieldName, "fake.png", "image/png", []byte("plain text pretending"), tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, e.fileCount(t))
}

func TestUploadErrors(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)

	w := e.upload(t, files.FieldName, "logo.png", "image/png", pngBytes, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.upload(t, "file", "logo.png", "image/png", pngBytes, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, int(e.app.Uploader.MaxSize()))...)
	w = e.upload(t, files.FieldName, "big.png", "image/png", big, tok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = e.do(http.MethodDelete, "/api/upload/a..b.png", "", tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, e.fileCount(t))
}
