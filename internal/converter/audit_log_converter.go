package converter

import (
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
)

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}

func ImageToResponse(image *entity.Image) *dto.ImageResponse {
	if image == nil {
		return nil
	}
	return &dto.ImageResponse{
		URL:         image.URL,
		Filename:    image.Filename,
		ContentType: image.ContentType,
		Size:        image.Size,
	}
}
