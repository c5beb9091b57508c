package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/repository"
	"foodstall-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditServiceRecordsActorFromIdentity(t *testing.T) {
	repo := repository.NewAuditLogRepository(testutil.NewDB(t))
	svc := NewAuditService(quietLogger(), repo)

	actor := uuid.New()
	ctx := entity.ContextWithIdentity(context.Background(), entity.Identity{UserID: actor})
	svc.LogCreate(ctx, "food", "f-1", map[string]string{"name": "Pho"})
	svc.LogDelete(context.Background(), "food", "f-1", nil)

	logs, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, "food.create", logs[0].Action)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, actor, *logs[0].UserID)
	assert.Equal(t, "f-1", logs[0].Metadata["entity_id"])

	assert.Equal(t, "food.delete", logs[1].Action)
	assert.Nil(t, logs[1].UserID)
}

func TestAuditServiceLogAuthFallsBackToSubject(t *testing.T) {
	repo := repository.NewAuditLogRepository(testutil.NewDB(t))
	svc := NewAuditService(quietLogger(), repo)

	userID := uuid.New()
	svc.LogAuth(context.Background(), entity.AuditActionUserLogin, userID, nil)

	logs, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionUserLogin, logs[0].Action)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, userID, *logs[0].UserID)
}

type failingAuditRepo struct{}

func (failingAuditRepo) Create(context.Context, *entity.AuditLog) error {
	return errors.New("boom")
}

func (failingAuditRepo) FindAll(context.Context) ([]entity.AuditLog, error) { return nil, nil }

func (failingAuditRepo) FindByID(context.Context, int64) (*entity.AuditLog, error) { return nil, nil }

func TestAuditServiceSwallowsWriteErrors(t *testing.T) {
	svc := NewAuditService(quietLogger(), failingAuditRepo{})

	assert.NotPanics(t, func() {
		svc.LogUpdate(context.Background(), "role", "r-1", nil, nil)
	})
}
