package repository

import (
	"go-admin-console/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRoleRepository interface {
	FindRoleIDsByAccountID(accountID uint) ([]uint, error)
	ExistsByRoleIDForUpdate(roleID uint) (bool, error)
}

type accountRoleRepo struct {
	db *gorm.DB
}

func NewAccountRoleRepo(db *gorm.DB) AccountRoleRepository {
	return &accountRoleRepo{db: db}
}

// FindRoleIDsByAccountID returns the ids of every role the account
// holds; an unlinked account yields an empty slice.
func (r *accountRoleRepo) FindRoleIDsByAccountID(accountID uint) ([]uint, error) {
	var roleIDs []uint
	err := r.db.Model(&model.AccountRole{}).
		Where("account_id = ?", accountID).
		Pluck("role_id", &roleIDs).Error
	return roleIDs, err
}

// ExistsByRoleIDForUpdate reports whether any account still holds the
// role, taking row locks on the matching link rows. Meant to run inside
// the role-deletion transaction so the bindings it saw cannot change
// under the following soft delete.
func (r *accountRoleRepo) ExistsByRoleIDForUpdate(roleID uint) (bool, error) {
	var ids []uint
	err := r.db.Model(&model.AccountRole{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("role_id = ?", roleID).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}
