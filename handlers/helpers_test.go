package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/internal/app"
	"github.com/seosites/seosites/backend/go-api/internal/config"
	"github.com/seosites/seosites/backend/go-api/internal/files"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

type testEnv struct {
	app   *app.App
	r     *gin.Engine
	files *files.LocalStore
}

type apiResponse struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Admin   json.RawMessage `json:"admin"`
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		JWT:     config.JWTConfig{Secret: "handlers-test-secret-xxxxxxxxxxxxxx", Expire: time.Hour},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Upload:  config.UploadConfig{Dir: dir, MaxFileSize: 4096, Driver: "local"},
		Company: config.CompanyConfig{DefaultName: "seosites"},
	}
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fs, err := files.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	a := app.New(testConfig(fs.Dir()), app.MemoryCollections(), fs)
	return &testEnv{app: a, r: NewRouter(a), files: fs}
}

// token signs a token for a principal that has no stored account.
func (e *testEnv) token(t *testing.T, role string) string {
	t.Helper()
	tok, err := e.app.Tokens.GenerateAccessToken(&models.Admin{Base: models.Base{ID: primitive.NewObjectID()}, Role: role})
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(method, path, body, tok string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *testEnv) putFile(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, e.files.Save(context.Background(), name, bytes.NewReader(pngBytes), int64(len(pngBytes)), "image/png"))
}

func (e *testEnv) hasFile(name string) bool {
	_, err := os.Stat(filepath.Join(e.files.Dir(), name))
	return err == nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) apiResponse {
	t.Helper()
	resp := decode(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, dst), string(resp.Data))
	return resp
}
