package repository

import (
	"context"

	"go-medical-console/internal/domain/entity"
)

type AuditLogFilter struct {
	UserID   *int64
	Action   string
	Resource string
	Limit    int
	Offset   int
}

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, filter AuditLogFilter) ([]entity.AuditLog, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
