package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"menucloud-api/config"
	"menucloud-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage accepts a multipart image, forwards it to the configured asset
// host, and returns the public URL the host assigns. The local temp copy is
// removed whether the forward succeeds or not.
func UploadImage(c *gin.Context) {
	cfg := config.Load()
	if cfg.AssetHostURL == "" {
		respond.ServerError(c, "Asset host not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respond.BadRequest(c, "Image file is required")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		respond.ServerError(c, "Failed to store uploaded file")
		return
	}
	defer os.Remove(tmpPath)

	url, err := forwardToAssetHost(cfg.AssetHostURL, tmpPath, file.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "Error uploading image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func forwardToAssetHost(hostURL, path, filename string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	resp, err := http.Post(hostURL, mw.FormDataContentType(), &body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &assetHostError{status: resp.StatusCode}
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.URL, nil
}

type assetHostError struct {
	status int
}

func (e *assetHostError) Error() string {
	return "asset host returned status " + http.StatusText(e.status)
}
