package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const maxUploadBytes = 8 << 20

var uploadExtensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// UploadImage 处理图片上传请求，只接受能被解码的图片
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file1")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no file uploaded")
		return
	}
	if file.Size > maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "file is too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "unable to read upload")
		return
	}
	cfg, format, err := image.DecodeConfig(src)
	src.Close()
	if err != nil {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}
	ext, ok := uploadExtensions[format]
	if !ok {
		respondError(c, http.StatusBadRequest, "unsupported image format")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		a.logUploadError(c, err)
		respondError(c, http.StatusInternalServerError, "unable to store upload")
		return
	}

	// 生成唯一文件名
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(a.uploadDir, newFilename)); err != nil {
		a.logUploadError(c, err)
		respondError(c, http.StatusInternalServerError, "unable to store upload")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    path.Join("/", strings.Trim(a.uploadURL, "/"), newFilename),
		"width":  cfg.Width,
		"height": cfg.Height,
	})
}

func (a *API) logUploadError(c *gin.Context, err error) {
	c.Error(fmt.Errorf("[%s] upload: %w", RequestIDFrom(c), err))
}
