package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mediaUC "github.com/khoahotran/portfolio-api/internal/application/usecase/media"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type MediaHandler struct {
	uploadAssetUC *mediaUC.UploadProfileAssetUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadProfileAssetUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		uploadAssetUC: uploadUC,
		logger:        log,
	}
}

func (h *MediaHandler) UploadProfileImage(c *gin.Context) {
	h.upload(c, mediaUC.AssetProfileImage)
}

func (h *MediaHandler) UploadResume(c *gin.Context) {
	h.upload(c, mediaUC.AssetResume)
}

func (h *MediaHandler) upload(c *gin.Context, kind mediaUC.AssetKind) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadAssetUC.Execute(c.Request.Context(), mediaUC.UploadProfileAssetInput{
		ProfileID: id,
		Kind:      kind,
		File:      file,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Info("Profile asset uploaded",
		zap.String("profile_id", id.String()),
		zap.String("kind", string(kind)),
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
	)
	Success(c, http.StatusOK, AssetUploadResponse{
		URL:     output.URL,
		Profile: ToProfileDTO(output.Profile),
	}, "File uploaded successfully")
}
