package service

import (
	"context"

	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records an audit trail of mutations. Writes are best effort:
// a failure is logged and never reaches the caller.
type AuditService interface {
	LogCreate(ctx context.Context, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, entityName string, entityID string, oldValue interface{})
	LogAuth(ctx context.Context, action string, userID uuid.UUID, metadata entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, entityName string, entityID string, newValue interface{}) {
	s.write(ctx, actorFromContext(ctx), entity.AuditAction(entityName, "create"), entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, entityName string, entityID string, oldValue, newValue interface{}) {
	s.write(ctx, actorFromContext(ctx), entity.AuditAction(entityName, "update"), entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, entityName string, entityID string, oldValue interface{}) {
	s.write(ctx, actorFromContext(ctx), entity.AuditAction(entityName, "delete"), entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogAuth logs a login, logout or registration of userID.
func (s *auditService) LogAuth(ctx context.Context, action string, userID uuid.UUID, metadata entity.JSON) {
	actor := actorFromContext(ctx)
	if actor == nil {
		actor = &userID
	}
	if metadata == nil {
		metadata = entity.JSON{}
	}
	metadata["user_id"] = userID.String()
	s.write(ctx, actor, action, metadata)
}

func (s *auditService) write(ctx context.Context, actor *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   actor,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}

func actorFromContext(ctx context.Context) *uuid.UUID {
	identity, ok := entity.IdentityFromContext(ctx)
	if !ok {
		return nil
	}
	id := identity.UserID
	return &id
}
