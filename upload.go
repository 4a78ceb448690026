package main

import (
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDir mengembalikan direktori penyimpanan gambar.
// Direktori ini juga di-serve sebagai static content di /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveImageFile menyimpan file upload multipart ke direktori upload
// dan mengembalikan path-nya untuk disimpan di database.
func SaveImageFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat direktori upload: %w", err)
	}

	// nama file: f_Image-<uuid><ext>, meniru skema multer lama
	ext := filepath.Ext(file.Filename)
	name := "f_Image-" + uuid.NewString() + ext
	dst := filepath.Join(dir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return dst, nil
}

// IsDataURL mengecek apakah string berupa data-URL base64 (dikirim frontend saat edit).
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// SaveBase64Image men-decode data-URL base64 menjadi file di direktori upload.
// Dengan begini representasi gambar selalu path, baik dari create maupun update.
func SaveBase64Image(dataURL string) (string, error) {
	header, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return "", fmt.Errorf("data-URL tidak valid")
	}

	// header contoh: data:image/png;base64
	ext := ".img"
	if mediaType, ok := strings.CutPrefix(header, "data:"); ok {
		mediaType, _, _ = strings.Cut(mediaType, ";")
		if sub, ok := strings.CutPrefix(mediaType, "image/"); ok && sub != "" {
			ext = "." + sub
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("gagal decode base64: %w", err)
	}

	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat direktori upload: %w", err)
	}

	dst := filepath.Join(dir, "f_Image-"+uuid.NewString()+ext)
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return dst, nil
}
