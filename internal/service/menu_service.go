package service

import (
	"go-admin-console/internal/model"
	"go-admin-console/internal/repository"
)

type MenuService interface {
	MenusForUser(user model.CurrentUser) ([]model.MenuItem, error)
}

type menuService struct {
	accessRepo      repository.AccessRepository
	accountRoleRepo repository.AccountRoleRepository
	roleAccessRepo  repository.RoleAccessRepository
}

func NewMenuService(accessRepo repository.AccessRepository, accountRoleRepo repository.AccountRoleRepository, roleAccessRepo repository.RoleAccessRepository) MenuService {
	return &menuService{
		accessRepo:      accessRepo,
		accountRoleRepo: accountRoleRepo,
		roleAccessRepo:  roleAccessRepo,
	}
}

// MenusForUser resolves the navigation entries the user is entitled to
// see. The supervisor identity sees the entire MODULE/MENU catalog with
// no role filtering; everyone else gets the subset reachable through
// account -> role -> access menu grants.
func (s *menuService) MenusForUser(user model.CurrentUser) ([]model.MenuItem, error) {
	if user.Identity == model.IdentitySuper {
		accessList, err := s.accessRepo.FindMenus()
		if err != nil {
			return nil, err
		}
		return formatMenus(accessList), nil
	}

	// 1. Roles granted to this account
	roleIDs, err := s.accountRoleRepo.FindRoleIDsByAccountID(user.AccountID)
	if err != nil {
		return nil, err
	}
	// An empty IN filter is not valid query semantics; short-circuit
	if len(roleIDs) == 0 {
		return []model.MenuItem{}, nil
	}

	// 2. Access ids those roles hold through menu-type grants
	accessIDs, err := s.roleAccessRepo.FindMenuAccessIDsByRoleIDs(roleIDs)
	if err != nil {
		return nil, err
	}
	if len(accessIDs) == 0 {
		return []model.MenuItem{}, nil
	}

	// 3. MODULE/MENU catalog entries behind those ids
	accessList, err := s.accessRepo.FindMenusByIDs(accessIDs)
	if err != nil {
		return nil, err
	}
	return formatMenus(accessList), nil
}

func formatMenus(accessList []model.Access) []model.MenuItem {
	items := make([]model.MenuItem, len(accessList))
	for i := range accessList {
		items[i] = accessList[i].ToMenuItem()
	}
	return items
}
