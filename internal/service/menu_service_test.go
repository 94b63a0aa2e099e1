package service

import (
	"testing"

	"go-admin-console/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccessRepo struct {
	catalog      []model.Access
	catalogCalls int
	byIDsCalls   [][]uint
}

func (f *fakeAccessRepo) FindMenus() ([]model.Access, error) {
	f.catalogCalls++
	var out []model.Access
	for _, a := range f.catalog {
		if a.Type == model.AccessTypeModule || a.Type == model.AccessTypeMenu {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccessRepo) FindMenusByIDs(ids []uint) ([]model.Access, error) {
	f.byIDsCalls = append(f.byIDsCalls, ids)
	idSet := make(map[uint]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	var out []model.Access
	for _, a := range f.catalog {
		if !idSet[a.ID] {
			continue
		}
		if a.Type == model.AccessTypeModule || a.Type == model.AccessTypeMenu {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccessRepo) Create(access *model.Access) error { return nil }
func (f *fakeAccessRepo) SeedDefaults() error               { return nil }

type fakeAccountRoleRepo struct {
	links        []model.AccountRole
	lockedChecks int
}

func (f *fakeAccountRoleRepo) FindRoleIDsByAccountID(accountID uint) ([]uint, error) {
	var roleIDs []uint
	for _, l := range f.links {
		if l.AccountID == accountID {
			roleIDs = append(roleIDs, l.RoleID)
		}
	}
	return roleIDs, nil
}

func (f *fakeAccountRoleRepo) ExistsByRoleIDForUpdate(roleID uint) (bool, error) {
	f.lockedChecks++
	for _, l := range f.links {
		if l.RoleID == roleID {
			return true, nil
		}
	}
	return false, nil
}

type fakeRoleAccessRepo struct {
	links []model.RoleAccess
	calls int
}

func (f *fakeRoleAccessRepo) FindMenuAccessIDsByRoleIDs(roleIDs []uint) ([]uint, error) {
	f.calls++
	roleSet := make(map[uint]bool, len(roleIDs))
	for _, id := range roleIDs {
		roleSet[id] = true
	}
	var accessIDs []uint
	for _, l := range f.links {
		if l.Type == model.GrantTypeMenu && roleSet[l.RoleID] {
			accessIDs = append(accessIDs, l.AccessID)
		}
	}
	return accessIDs, nil
}

func (f *fakeRoleAccessRepo) Create(link *model.RoleAccess) error {
	f.links = append(f.links, *link)
	return nil
}

func access(id uint, accessType model.AccessType, moduleName, actionName string) model.Access {
	return model.Access{
		BaseModel:  model.BaseModel{ID: id},
		ModuleName: moduleName,
		ActionName: actionName,
		Type:       accessType,
		URL:        "/x",
		Sort:       1,
		Icon:       "icon",
	}
}

func TestMenusForSuperuserReturnsWholeCatalog(t *testing.T) {
	accessRepo := &fakeAccessRepo{catalog: []model.Access{
		access(1, model.AccessTypeModule, "System", ""),
		access(2, model.AccessTypeMenu, "Roles", ""),
		access(3, model.AccessTypeAction, "", "role:create"),
	}}
	roleAccessRepo := &fakeRoleAccessRepo{}
	svc := NewMenuService(accessRepo, &fakeAccountRoleRepo{}, roleAccessRepo)

	menus, err := svc.MenusForUser(model.CurrentUser{AccountID: 1, Identity: model.IdentitySuper})
	require.NoError(t, err)

	// Full MODULE/MENU catalog, actions excluded, no grant lookups at all
	require.Len(t, menus, 2)
	assert.Equal(t, uint(1), menus[0].ID)
	assert.Equal(t, "System", menus[0].Name)
	assert.Equal(t, uint(2), menus[1].ID)
	assert.Equal(t, "Roles", menus[1].Name)
	assert.Equal(t, 0, roleAccessRepo.calls)
}

func TestMenusForUserWithoutRoles(t *testing.T) {
	accessRepo := &fakeAccessRepo{catalog: []model.Access{
		access(1, model.AccessTypeMenu, "Roles", ""),
	}}
	roleAccessRepo := &fakeRoleAccessRepo{}
	svc := NewMenuService(accessRepo, &fakeAccountRoleRepo{}, roleAccessRepo)

	menus, err := svc.MenusForUser(model.CurrentUser{AccountID: 42, Identity: model.IdentityOrdinary})
	require.NoError(t, err)

	// Empty role set short-circuits; no empty IN filter ever reaches storage
	assert.Empty(t, menus)
	assert.Equal(t, 0, roleAccessRepo.calls)
	assert.Empty(t, accessRepo.byIDsCalls)
}

func TestMenusFilteredByGrantType(t *testing.T) {
	accessRepo := &fakeAccessRepo{catalog: []model.Access{
		access(5, model.AccessTypeMenu, "Roles", ""),
		access(6, model.AccessTypeMenu, "Accounts", ""),
	}}
	accountRoleRepo := &fakeAccountRoleRepo{links: []model.AccountRole{
		{AccountID: 7, RoleID: 1},
	}}
	roleAccessRepo := &fakeRoleAccessRepo{links: []model.RoleAccess{
		{RoleID: 1, AccessID: 5, Type: model.GrantTypeMenu},
		{RoleID: 1, AccessID: 6, Type: model.GrantTypeAPI},
	}}
	svc := NewMenuService(accessRepo, accountRoleRepo, roleAccessRepo)

	menus, err := svc.MenusForUser(model.CurrentUser{AccountID: 7, Identity: model.IdentityOrdinary})
	require.NoError(t, err)

	// Access 6 is linked, but not through a menu grant
	require.Len(t, menus, 1)
	assert.Equal(t, uint(5), menus[0].ID)
}

func TestMenusExcludeActionEntries(t *testing.T) {
	accessRepo := &fakeAccessRepo{catalog: []model.Access{
		access(5, model.AccessTypeAction, "", "role:create"),
	}}
	accountRoleRepo := &fakeAccountRoleRepo{links: []model.AccountRole{
		{AccountID: 7, RoleID: 1},
	}}
	roleAccessRepo := &fakeRoleAccessRepo{links: []model.RoleAccess{
		{RoleID: 1, AccessID: 5, Type: model.GrantTypeMenu},
	}}
	svc := NewMenuService(accessRepo, accountRoleRepo, roleAccessRepo)

	menus, err := svc.MenusForUser(model.CurrentUser{AccountID: 7, Identity: model.IdentityOrdinary})
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestMenusWithoutMenuGrants(t *testing.T) {
	accessRepo := &fakeAccessRepo{catalog: []model.Access{
		access(5, model.AccessTypeMenu, "Roles", ""),
	}}
	accountRoleRepo := &fakeAccountRoleRepo{links: []model.AccountRole{
		{AccountID: 7, RoleID: 1},
	}}
	roleAccessRepo := &fakeRoleAccessRepo{links: []model.RoleAccess{
		{RoleID: 1, AccessID: 5, Type: model.GrantTypeAPI},
	}}
	svc := NewMenuService(accessRepo, accountRoleRepo, roleAccessRepo)

	menus, err := svc.MenusForUser(model.CurrentUser{AccountID: 7, Identity: model.IdentityOrdinary})
	require.NoError(t, err)

	// No menu-type grants means no access id set, so no catalog lookup
	assert.Empty(t, menus)
	assert.Empty(t, accessRepo.byIDsCalls)
}

func TestMenuNameFallsBackToActionName(t *testing.T) {
	accessRepo := &fakeAccessRepo{catalog: []model.Access{
		access(9, model.AccessTypeMenu, "", "Settings"),
	}}
	svc := NewMenuService(accessRepo, &fakeAccountRoleRepo{}, &fakeRoleAccessRepo{})

	menus, err := svc.MenusForUser(model.CurrentUser{AccountID: 1, Identity: model.IdentitySuper})
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Settings", menus[0].Name)
}
