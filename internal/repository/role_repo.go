package repository

import (
	"errors"

	"go-admin-console/internal/model"

	"gorm.io/gorm"
)

// roleWriteLockKey is the advisory lock key serializing role mutations.
const roleWriteLockKey = 0x524F4C45

// RoleFilter is the typed criteria for listing roles. Optional fields
// are only applied when set; translation to SQL happens in List alone.
type RoleFilter struct {
	Name       string // fuzzy, case-insensitive substring match
	Status     *model.Status
	PageNumber int
	PageSize   int
}

type RoleRepository interface {
	FindByID(id uint) (*model.Role, error)
	FindByName(name string) (*model.Role, error)
	FindDefault() (*model.Role, error)
	Create(role *model.Role) error
	UpdateByID(id uint, updates map[string]interface{}) (int64, error)
	SoftDeleteByID(id uint) (int64, error)
	List(filter RoleFilter) ([]model.Role, int64, error)
	// AcquireWriteLock takes the transaction-scoped advisory lock that
	// serializes role mutations. Must be called inside Transaction; the
	// lock is released at commit or rollback.
	AcquireWriteLock() error
	// Transaction runs fn against repositories bound to a single
	// database transaction, so guard checks and the following mutation
	// commit or fail together.
	Transaction(fn func(roles RoleRepository, links AccountRoleRepository) error) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

// FindByID returns (nil, nil) when no active role matches; storage
// failures are returned as-is.
func (r *roleRepo) FindByID(id uint) (*model.Role, error) {
	var role model.Role
	err := r.db.First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByName(name string) (*model.Role, error) {
	var role model.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindDefault returns the active role carrying the default flag, if any
func (r *roleRepo) FindDefault() (*model.Role, error) {
	var role model.Role
	err := r.db.Where("is_default = ?", model.DefaultRole).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Create(role *model.Role) error {
	return r.db.Create(role).Error
}

func (r *roleRepo) UpdateByID(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&model.Role{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// SoftDeleteByID marks the role deleted and reports how many rows were
// touched; the row itself is retained for audit.
func (r *roleRepo) SoftDeleteByID(id uint) (int64, error) {
	result := r.db.Delete(&model.Role{}, id)
	return result.RowsAffected, result.Error
}

func (r *roleRepo) List(filter RoleFilter) ([]model.Role, int64, error) {
	query := r.db.Model(&model.Role{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roles []model.Role
	err := query.
		Order("id").
		Offset((filter.PageNumber - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&roles).Error
	return roles, total, err
}

// AcquireWriteLock blocks until no other transaction holds the role
// mutation lock. pg_advisory_xact_lock is released automatically when
// the surrounding transaction ends.
func (r *roleRepo) AcquireWriteLock() error {
	return r.db.Exec("SELECT pg_advisory_xact_lock(?)", roleWriteLockKey).Error
}

func (r *roleRepo) Transaction(fn func(RoleRepository, AccountRoleRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&roleRepo{db: tx}, &accountRoleRepo{db: tx})
	})
}
