package httpapi

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Image upload failed: %v", err)})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Image upload failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": dataURI(fileHeader.Filename, contents)})
}

// dataURI encodes image bytes as a data URI, deriving the media subtype from
// the filename extension and defaulting to jpg.
func dataURI(filename string, contents []byte) string {
	ext := "jpg"
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}
	return fmt.Sprintf("data:image/%s;base64,%s", ext, base64.StdEncoding.EncodeToString(contents))
}
