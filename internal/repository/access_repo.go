package repository

import (
	"go-admin-console/internal/model"

	"gorm.io/gorm"
)

type AccessRepository interface {
	FindMenus() ([]model.Access, error)
	FindMenusByIDs(ids []uint) ([]model.Access, error)
	Create(access *model.Access) error
	SeedDefaults() error
}

type accessRepo struct {
	db *gorm.DB
}

func NewAccessRepo(db *gorm.DB) AccessRepository {
	return &accessRepo{db: db}
}

// FindMenus returns the whole navigable catalog: every entry of type
// MODULE or MENU. Actions are never surfaced in menu output.
func (r *accessRepo) FindMenus() ([]model.Access, error) {
	var accessList []model.Access
	err := r.db.
		Where("type IN ?", []model.AccessType{model.AccessTypeModule, model.AccessTypeMenu}).
		Order("sort, id").
		Find(&accessList).Error
	return accessList, err
}

// FindMenusByIDs returns MODULE/MENU entries restricted to the given id
// set. Callers must guard against an empty set themselves.
func (r *accessRepo) FindMenusByIDs(ids []uint) ([]model.Access, error) {
	var accessList []model.Access
	err := r.db.
		Where("id IN ? AND type IN ?", ids, []model.AccessType{model.AccessTypeModule, model.AccessTypeMenu}).
		Order("sort, id").
		Find(&accessList).Error
	return accessList, err
}

func (r *accessRepo) Create(access *model.Access) error {
	return r.db.Create(access).Error
}

// SeedDefaults creates the system module and its management menus when
// the catalog is empty
func (r *accessRepo) SeedDefaults() error {
	var count int64
	if err := r.db.Model(&model.Access{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	system := model.Access{
		ModuleName: "System",
		Type:       model.AccessTypeModule,
		URL:        "/system",
		Sort:       1,
		Icon:       "setting",
	}
	if err := r.Create(&system); err != nil {
		return err
	}

	menus := []model.Access{
		{ModuleName: "Accounts", Type: model.AccessTypeMenu, ParentID: system.ID, URL: "/system/accounts", Sort: 1, Icon: "user"},
		{ModuleName: "Roles", Type: model.AccessTypeMenu, ParentID: system.ID, URL: "/system/roles", Sort: 2, Icon: "team"},
		{ModuleName: "Menus", Type: model.AccessTypeMenu, ParentID: system.ID, URL: "/system/menus", Sort: 3, Icon: "menu"},
	}
	for i := range menus {
		if err := r.Create(&menus[i]); err != nil {
			return err
		}
	}
	return nil
}
