package repository

import (
	"context"

	"go-medical-console/internal/domain/entity"
)

type StatisticsRepository interface {
	Admin(ctx context.Context) (*entity.AdminStatistics, error)
	PatientSummary(ctx context.Context) (*entity.PatientSummary, error)
}
