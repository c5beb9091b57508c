package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/repository"
	"foodstall-backend/internal/service"
	"foodstall-backend/internal/usecase"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminAccount is the optional first user created by Seed.
type AdminAccount struct {
	Email    string
	Password string
}

// staffPermissions lets the counter read the catalog and ring up invoices.
func staffPermissions() entity.PermissionSet {
	return entity.PermissionSet{
		string(entity.ResourceFood):         {string(entity.ActionRead)},
		string(entity.ResourceFoodCategory): {string(entity.ActionRead)},
		string(entity.ResourceFoodMenu):     {string(entity.ActionRead)},
		string(entity.ResourceInvoice):      {string(entity.ActionCreate), string(entity.ActionRead)},
	}
}

// Seed creates the admin and staff roles and, when admin is set, an admin user.
// Existing rows are left untouched so it can run repeatedly.
func Seed(ctx context.Context, log *logrus.Logger, db *gorm.DB, admin AdminAccount) error {
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	audit := service.NewAuditService(log, repository.NewAuditLogRepository(db))
	roleUsecase := usecase.NewRoleUsecase(log, roleRepo, audit)

	roles := []dto.CreateRoleRequest{
		{Name: entity.RoleAdmin, Permissions: entity.FullPermissionSet()},
		{Name: entity.RoleStaff, Permissions: staffPermissions()},
	}
	for i := range roles {
		_, err := roleUsecase.Create(ctx, &roles[i])
		switch {
		case err == nil:
			log.WithField("role", roles[i].Name).Info("Role seeded")
		case errors.Is(err, usecase.ErrRoleNameExists):
			log.WithField("role", roles[i].Name).Info("Role already present")
		default:
			return fmt.Errorf("seed role %s: %w", roles[i].Name, err)
		}
	}

	if admin.Email == "" {
		return nil
	}
	if len(admin.Password) < 6 {
		return errors.New("admin password must be at least 6 characters")
	}

	existing, err := userRepo.FindByEmail(ctx, admin.Email)
	if err != nil {
		return fmt.Errorf("look up admin user: %w", err)
	}
	if existing != nil {
		log.WithField("email", admin.Email).Info("Admin user already present")
		return nil
	}

	adminRole, err := roleRepo.FindByName(ctx, entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("load admin role: %w", err)
	}
	if adminRole == nil {
		return usecase.ErrRoleNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &entity.User{Email: admin.Email, Password: string(hash), RoleID: adminRole.ID}
	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	audit.LogAuth(ctx, entity.AuditActionUserRegister, user.ID, entity.JSON{"role": entity.RoleAdmin, "source": "seed"})

	log.WithField("email", admin.Email).Info("Admin user seeded")
	return nil
}
