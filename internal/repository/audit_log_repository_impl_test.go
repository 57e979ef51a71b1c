package repository

import (
	"context"
	"testing"

	"go-medical-console/internal/domain/entity"
	domainRepo "go-medical-console/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuditDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestAuditLogFilters(t *testing.T) {
	repo := NewAuditLogRepository(setupAuditDB(t))
	ctx := context.Background()

	admin := int64(1)
	secretary := int64(2)
	entries := []*entity.AuditLog{
		{UserID: &admin, Action: entity.AuditActionLogin},
		{UserID: &admin, Action: entity.AuditActionCreate, Resource: "departements", ResourceID: "3", Metadata: entity.JSON{"nom": "Neurologie"}},
		{UserID: &secretary, Action: entity.AuditActionStatusChange, Resource: "rendez-vous", ResourceID: "8"},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	all, total, err := repo.FindAll(ctx, domainRepo.AuditLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	mine, total, err := repo.FindAll(ctx, domainRepo.AuditLogFilter{UserID: &admin, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 1)

	byResource, _, err := repo.FindAll(ctx, domainRepo.AuditLogFilter{Resource: "departements"})
	require.NoError(t, err)
	require.Len(t, byResource, 1)
	assert.Equal(t, "Neurologie", byResource[0].Metadata["nom"])
}

func TestAuditLogFindByIDMissing(t *testing.T) {
	repo := NewAuditLogRepository(setupAuditDB(t))

	log, err := repo.FindByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, log)
}
