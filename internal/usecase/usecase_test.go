package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"foodstall-backend/config"
	"foodstall-backend/internal/domain/entity"
	domainRepo "foodstall-backend/internal/domain/repository"
	"foodstall-backend/internal/repository"
	"foodstall-backend/internal/service"
	"foodstall-backend/internal/testutil"
	"foodstall-backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	mr         *miniredis.Miniredis
	log        *logrus.Logger
	foods      domainRepo.FoodRepository
	categories domainRepo.FoodCategoryRepository
	menus      domainRepo.FoodMenuRepository
	employees  domainRepo.EmployeeRepository
	invoices   domainRepo.InvoiceRepository
	roles      domainRepo.RoleRepository
	users      domainRepo.UserRepository
	sessions   domainRepo.SessionRepository
	auditLogs  domainRepo.AuditLogRepository
	audit      service.AuditService
	jwt        *jwt.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	client, mr := testutil.NewRedis(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	auditLogs := repository.NewAuditLogRepository(db)
	return &testEnv{
		db:         db,
		mr:         mr,
		log:        log,
		foods:      repository.NewFoodRepository(db),
		categories: repository.NewFoodCategoryRepository(db),
		menus:      repository.NewFoodMenuRepository(db),
		employees:  repository.NewEmployeeRepository(db),
		invoices:   repository.NewInvoiceRepository(db),
		roles:      repository.NewRoleRepository(db),
		users:      repository.NewUserRepository(db),
		sessions:   repository.NewSessionRepository(client),
		auditLogs:  auditLogs,
		audit:      service.NewAuditService(log, auditLogs),
		jwt:        jwt.NewJWTService(config.JWTConfig{Secret: "test-secret"}, time.Hour),
	}
}

func (e *testEnv) seedRole(t *testing.T, name string, permissions entity.PermissionSet) *entity.Role {
	t.Helper()
	role := &entity.Role{Name: name, Permissions: permissions}
	require.NoError(t, e.roles.Create(context.Background(), role))
	return role
}

func (e *testEnv) seedCategory(t *testing.T) *entity.FoodCategory {
	t.Helper()
	category := &entity.FoodCategory{CategoryName: "Noodles", CategoryDescription: "Soups"}
	require.NoError(t, e.categories.Create(context.Background(), category))
	return category
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func ptr[T any](v T) *T {
	return &v
}

// countingFoodRepo records every call so tests can prove nothing was persisted.
type countingFoodRepo struct {
	domainRepo.FoodRepository
	calls int
}

func (r *countingFoodRepo) Create(ctx context.Context, food *entity.Food) error {
	r.calls++
	return r.FoodRepository.Create(ctx, food)
}

func (r *countingFoodRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	r.calls++
	return r.FoodRepository.FindByID(ctx, id)
}

func (r *countingFoodRepo) Update(ctx context.Context, food *entity.Food) error {
	r.calls++
	return r.FoodRepository.Update(ctx, food)
}
