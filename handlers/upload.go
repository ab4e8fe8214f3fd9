package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/internal/files"
)

// multipart framing allowance on top of the file size limit
const formOverhead = 1 << 20

type UploadHandler struct {
	up    *files.Uploader
	store files.Store
}

func NewUploadHandler(up *files.Uploader, store files.Store) *UploadHandler {
	return &UploadHandler{up: up, store: store}
}

// Upload accepts one image in the "image" form field.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.up.MaxSize()+formOverhead)
	fh, err := c.FormFile(files.FieldName)
	if err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			fail(c, apperr.TooLarge("File too large"))
		case errors.Is(err, http.ErrMissingFile):
			fail(c, apperr.BadRequest("Please upload a file"))
		default:
			fail(c, apperr.BadRequest("Invalid upload: "+err.Error()))
		}
		return
	}
	res, err := h.up.Upload(c.Request.Context(), fh)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.up.Remove(c.Request.Context(), c.Param("filename")); err != nil {
		fail(c, err)
		return
	}
	okMessage(c, "File deleted successfully")
}

// Serve streams a stored file for GET /uploads/:name.
func (h *UploadHandler) Serve(c *gin.Context) {
	name := c.Param("name")
	if !files.ValidName(name) {
		NotFoundRoute(c)
		return
	}
	rc, err := h.store.Open(c.Request.Context(), name)
	if errors.Is(err, files.ErrNotExist) {
		NotFoundRoute(c)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	defer rc.Close()

	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Security-Policy", "default-src 'none'; sandbox")
	if rs, ok := rc.(io.ReadSeeker); ok {
		http.ServeContent(c.Writer, c.Request, name, time.Time{}, rs)
		return
	}
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, -1, ct, rc, nil)
}
