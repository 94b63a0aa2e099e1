package repository

import (
	"go-admin-console/internal/model"

	"gorm.io/gorm"
)

type RoleAccessRepository interface {
	FindMenuAccessIDsByRoleIDs(roleIDs []uint) ([]uint, error)
	Create(link *model.RoleAccess) error
}

type roleAccessRepo struct {
	db *gorm.DB
}

func NewRoleAccessRepo(db *gorm.DB) RoleAccessRepository {
	return &roleAccessRepo{db: db}
}

// FindMenuAccessIDsByRoleIDs returns access ids granted to any of the
// given roles through menu-type links. Links of other grant kinds are
// excluded. Callers must guard against an empty role id set.
func (r *roleAccessRepo) FindMenuAccessIDsByRoleIDs(roleIDs []uint) ([]uint, error) {
	var accessIDs []uint
	err := r.db.Model(&model.RoleAccess{}).
		Where("role_id IN ? AND type = ?", roleIDs, model.GrantTypeMenu).
		Pluck("access_id", &accessIDs).Error
	return accessIDs, err
}

func (r *roleAccessRepo) Create(link *model.RoleAccess) error {
	return r.db.Create(link).Error
}
