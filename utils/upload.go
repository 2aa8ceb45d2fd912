package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// SaveImage stores an uploaded image under uploadDir with a timestamp-prefixed
// name and returns its public URL. A missing, empty or disallowed file yields
// "" without failing the request.
func SaveImage(c *gin.Context, file *multipart.FileHeader, uploadDir string) string {
	if file == nil || file.Filename == "" {
		return ""
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return ""
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		ErrorLogger.Printf("Error creating upload directory %s: %v", uploadDir, err)
		return ""
	}

	// Timestamp prefix keeps concurrent uploads of the same file apart.
	filename := time.Now().Format("20060102_150405_") + filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		ErrorLogger.Printf("Error saving upload %s: %v", filename, err)
		return ""
	}

	return "/static/uploads/" + filename
}
