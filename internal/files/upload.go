package files

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/pkg/metrics"
)

// FieldName is the multipart field carrying the image.
const FieldName = "image"

const sniffLen = 3072

var ErrNotImage = apperr.BadRequest("Only image files are allowed")

// Uploaded describes a stored file.
type Uploaded struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// Uploader validates incoming images and writes them to a Store.
type Uploader struct {
	store   Store
	maxSize int64
	now     func() time.Time
}

func NewUploader(store Store, maxSize int64) *Uploader {
	return &Uploader{store: store, maxSize: maxSize, now: time.Now}
}

func (u *Uploader) MaxSize() int64 { return u.maxSize }

// Upload checks the declared and sniffed MIME types before anything is written.
func (u *Uploader) Upload(ctx context.Context, fh *multipart.FileHeader) (*Uploaded, error) {
	if fh.Size > u.maxSize {
		metrics.Uploads.WithLabelValues("too_large").Inc()
		return nil, apperr.TooLarge("File too large")
	}
	if !strings.HasPrefix(strings.ToLower(fh.Header.Get("Content-Type")), "image/") {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return nil, ErrNotImage
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:n]
	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return nil, ErrNotImage
	}

	ext := storedExt(fh.Filename, mt)
	body := io.MultiReader(bytes.NewReader(head), f)
	for attempt := 0; ; attempt++ {
		name := GenerateName(FieldName, ext, u.now())
		err := u.store.Save(ctx, name, body, fh.Size, mt.String())
		if errors.Is(err, ErrExist) && attempt < 2 {
			continue
		}
		if err != nil {
			metrics.Uploads.WithLabelValues("error").Inc()
			return nil, err
		}
		metrics.Uploads.WithLabelValues("stored").Inc()
		return &Uploaded{URL: PublicURL(name), Filename: name, Path: u.store.Location(name)}, nil
	}
}

// storedExt keeps the client's extension only when it maps to the sniffed
// type, so a file is always served as what its bytes are.
func storedExt(original string, mt *mimetype.MIME) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext != "" && ext == mt.Extension() {
		return ext
	}
	if byExt, _, err := mime.ParseMediaType(mime.TypeByExtension(ext)); err == nil && mt.Is(byExt) {
		return ext
	}
	return mt.Extension()
}

// Remove deletes one stored file by name.
func (u *Uploader) Remove(ctx context.Context, name string) error {
	if !ValidName(name) {
		return apperr.BadRequest("Invalid filename")
	}
	if err := u.store.Delete(ctx, name); err != nil {
		if errors.Is(err, ErrNotExist) {
			return apperr.NotFound("File not found")
		}
		return err
	}
	return nil
}
