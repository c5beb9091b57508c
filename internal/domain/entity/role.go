package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is a named bundle of permissions, referenced by users.
type Role struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Permissions PermissionSet `gorm:"type:jsonb;not null" json:"permissions"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Grants reports whether the role may perform action on resource.
func (r *Role) Grants(resource Resource, action Action) bool {
	if r == nil {
		return false
	}
	return r.Permissions.Allows(resource, action)
}

// Seeded role names
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)
