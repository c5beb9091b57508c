package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
)

const uploadField = "img"

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	maxBytes      int64
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		maxBytes:      maxBytes,
	}
}

// UploadImage handles image uploads
// @Summary Upload an image
// @Description Multipart upload, field "img". Only image content is accepted.
// @Tags Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// multipart framing adds a little on top of the file itself
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1<<20)

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(w, "Image exceeds the maximum upload size.")
			return
		}
		response.BadRequest(w, "Please provide an image in the \"img\" field.")
		return
	}
	defer file.Close()

	image, err := h.uploadUsecase.UploadImage(r.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnsupportedImage):
			response.BadRequest(w, "Only image files can be uploaded.")
		case errors.Is(err, usecase.ErrImageTooLarge):
			response.BadRequest(w, "Image exceeds the maximum upload size.")
		case errors.Is(err, usecase.ErrEmptyUpload):
			response.BadRequest(w, "Uploaded file is empty.")
		default:
			response.InternalServerError(w, "Failed to upload image", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Image uploaded successfully", "image", image)
}
