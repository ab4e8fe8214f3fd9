package files

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path under which stored files are served.
const PublicPrefix = "/uploads/"

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// ValidName reports whether name is a bare filename safe to use inside the store.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return false
	}
	return !strings.Contains(name, "..")
}

// PublicURL is the URL clients store in documents.
func PublicURL(name string) string {
	return PublicPrefix + name
}

// NameFromURL extracts the stored filename from a document URL. Only URLs whose
// path lives under PublicPrefix refer to our store; others report false.
func NameFromURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(u.Path, PublicPrefix) {
		return "", false
	}
	name := path.Base(u.Path)
	if !ValidName(name) || u.Path != PublicPrefix+name {
		return "", false
	}
	return name, true
}

// GenerateName builds "<field>-<unix ms>-<random><ext>". An ext that does not
// look like a short lowercase extension is dropped.
func GenerateName(field, ext string, now time.Time) string {
	ext = strings.ToLower(ext)
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s-%d-%s%s", field, now.UnixMilli(), suffix, ext)
}
