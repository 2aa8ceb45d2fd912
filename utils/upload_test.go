package utils_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"restaurant-backoffice/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func uploadContext(t *testing.T, filename string) (*gin.Context, *multipart.FileHeader) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("image", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte("file contents"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.Request = req

	file, err := c.FormFile("image")
	assert.NoError(t, err)
	return c, file
}

func TestSaveImageWritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	c, file := uploadContext(t, "photo.png")

	url := utils.SaveImage(c, file, dir)
	assert.True(t, strings.HasPrefix(url, "/static/uploads/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, "photo.png"))
	assert.NotEqual(t, "/static/uploads/photo.png", url, "filename carries a timestamp prefix")

	saved := filepath.Join(dir, strings.TrimPrefix(url, "/static/uploads/"))
	contents, err := os.ReadFile(saved)
	assert.NoError(t, err)
	assert.Equal(t, "file contents", string(contents))
}

func TestSaveImageRejectsDisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	c, file := uploadContext(t, "malware.exe")

	assert.Equal(t, "", utils.SaveImage(c, file, dir))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveImageNilFile(t *testing.T) {
	c, _ := uploadContext(t, "photo.png")
	assert.Equal(t, "", utils.SaveImage(c, nil, t.TempDir()))
}
