package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"grandywoods/auth"
	"grandywoods/config"
	"grandywoods/storage"
)

// EditorUpload stores an image or PDF inserted in a rich text field and returns its URL
func EditorUpload(c *gin.Context) {
	if config.UPLOAD_REQUIRES_AUTH && !auth.LoadSession(c).IsAdmin() {
		c.JSON(http.StatusForbidden, UploadDeniedResponse)
		return
	}
	file, err := c.FormFile("upload")
	if err != nil {
		c.JSON(http.StatusOK, UploadNoFileResponse)
		return
	}
	folder, err := storage.EditorFolder(file.Filename)
	if errors.Is(err, storage.ErrUnsupportedType) {
		c.JSON(http.StatusOK, UploadUnsupportedResponse)
		return
	}
	if file.Size > int64(config.MAX_UPLOAD_MB)<<20 {
		c.JSON(http.StatusOK, UploadTooLargeResponse)
		return
	}
	reader, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("opening editor upload")
		c.JSON(http.StatusInternalServerError, UploadFailedResponse)
		return
	}
	defer reader.Close()
	name, err := storage.Default.Save(folder+"/"+storage.CleanName(file.Filename), reader)
	if err != nil {
		log.Error().Err(err).Str("file", file.Filename).Msg("saving editor upload")
		c.JSON(http.StatusInternalServerError, UploadFailedResponse)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{
		Uploaded: true,
		URL:      storage.Default.URL(name),
	})
}
