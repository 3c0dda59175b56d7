package service

import (
	"context"
	"io"
	"testing"

	"go-hospital-admin/internal/delivery/http/middleware"
	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"
	"go-hospital-admin/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordsActorAndValues(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := repository.NewMemoryAuditLogRepository()
	svc := NewAuditService(log, repo)

	ctx := middleware.WithActor(context.Background(), "admin")
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "tok-1")
	require.NoError(t, svc.LogUpdate(ctx, entity.AuditActionPatientUpdate, "patient", "p-1", "old", "new"))
	require.NoError(t, svc.LogDelete(context.Background(), entity.AuditActionPatientDelete, "patient", "p-1", "new"))

	logs, err := repo.FindAll(context.Background(), domainRepo.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, "admin", logs[0].Actor)
	assert.Equal(t, entity.AuditActionPatientUpdate, logs[0].Action)
	assert.Equal(t, "p-1", logs[0].Metadata["entity_id"])
	assert.Equal(t, "old", logs[0].Metadata["old_value"])
	assert.Equal(t, "new", logs[0].Metadata["new_value"])

	assert.Equal(t, "tok-1", logs[0].Metadata["token_id"])

	assert.Equal(t, entity.AnonymousActor, logs[1].Actor)
	assert.NotContains(t, logs[1].Metadata, "token_id")
	assert.Nil(t, logs[1].Metadata["new_value"])
}
