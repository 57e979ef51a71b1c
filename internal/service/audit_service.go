package service

import (
	"context"
	"encoding/json"

	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Keys stripped from recorded payloads.
var redactedKeys = []string{"password", "password_confirmation"}

// AuditService records console mutations. Recording is best effort: the
// upstream write has already happened, so failures are only logged.
type AuditService interface {
	LogSession(ctx context.Context, actor *entity.Session, action string)
	LogCreate(ctx context.Context, actor *entity.Session, resource, resourceID string, newValue interface{})
	LogUpdate(ctx context.Context, actor *entity.Session, resource, resourceID string, newValue interface{})
	LogDelete(ctx context.Context, actor *entity.Session, resource, resourceID string)
	LogStatusChange(ctx context.Context, actor *entity.Session, rendezVousID string, status entity.RendezVousStatus)
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

func (s *auditService) LogSession(ctx context.Context, actor *entity.Session, action string) {
	s.record(ctx, actor, &entity.AuditLog{Action: action})
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, actor *entity.Session, resource, resourceID string, newValue interface{}) {
	s.record(ctx, actor, &entity.AuditLog{
		Action:     entity.AuditActionCreate,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   entity.JSON{"new_value": redact(newValue)},
	})
}

// LogUpdate logs an update action with the submitted values
func (s *auditService) LogUpdate(ctx context.Context, actor *entity.Session, resource, resourceID string, newValue interface{}) {
	s.record(ctx, actor, &entity.AuditLog{
		Action:     entity.AuditActionUpdate,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   entity.JSON{"new_value": redact(newValue)},
	})
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(ctx context.Context, actor *entity.Session, resource, resourceID string) {
	s.record(ctx, actor, &entity.AuditLog{
		Action:     entity.AuditActionDelete,
		Resource:   resource,
		ResourceID: resourceID,
	})
}

func (s *auditService) LogStatusChange(ctx context.Context, actor *entity.Session, rendezVousID string, status entity.RendezVousStatus) {
	s.record(ctx, actor, &entity.AuditLog{
		Action:     entity.AuditActionStatusChange,
		Resource:   "rendez-vous",
		ResourceID: rendezVousID,
		Metadata:   entity.JSON{"statut": string(status)},
	})
}

func (s *auditService) record(ctx context.Context, actor *entity.Session, auditLog *entity.AuditLog) {
	if actor != nil {
		userID := actor.User.ID
		auditLog.UserID = &userID
		auditLog.UserEmail = actor.User.Email
		auditLog.Role = actor.User.Role
	}

	// The request may already be cancelled once the upstream call returned.
	if err := s.auditRepo.Create(context.WithoutCancel(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}

// redact round-trips v through JSON and drops credential fields.
func redact(v interface{}) interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return v
	}
	for _, key := range redactedKeys {
		delete(fields, key)
	}
	return fields
}
