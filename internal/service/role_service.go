package service

import (
	"errors"
	"fmt"

	"go-admin-console/internal/model"
	"go-admin-console/internal/repository"
	"go-admin-console/internal/ws"
	"go-admin-console/pkg/validator"
)

var (
	ErrRoleNameExists    = errors.New("role name already exists")
	ErrDefaultRoleExists = errors.New("a default role already exists")
	ErrRoleInUse         = errors.New("role is still bound to one or more accounts")
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

type RoleService interface {
	CreateRole(req *CreateRoleRequest) error
	UpdateRole(id uint, req *UpdateRoleRequest) (bool, error)
	DeleteRole(id uint) (bool, error)
	GetRole(id uint) (*model.Role, error)
	ListRoles(req *RoleListRequest) (*RoleListResponse, error)
}

type CreateRoleRequest struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Description string             `json:"description"`
	IsDefault   *model.DefaultFlag `json:"is_default"`
	Status      *model.Status      `json:"status"`
}

type UpdateRoleRequest struct {
	Name        *string            `json:"name" validate:"omitempty,max=100"`
	Description *string            `json:"description"`
	IsDefault   *model.DefaultFlag `json:"is_default"`
	Status      *model.Status      `json:"status"`
}

type RoleListRequest struct {
	PageNumber int
	PageSize   int
	Name       string
	Status     *int
}

type RoleListResponse struct {
	Data       []model.Role `json:"data"`
	Total      int64        `json:"total"`
	PageSize   int          `json:"page_size"`
	PageNumber int          `json:"page_number"`
}

type roleService struct {
	roleRepo repository.RoleRepository
	hub      *ws.Hub
}

func NewRoleService(roleRepo repository.RoleRepository, hub *ws.Hub) RoleService {
	return &roleService{
		roleRepo: roleRepo,
		hub:      hub,
	}
}

// CreateRole inserts a new active role. The duplicate-name and
// single-default guards run inside one transaction with the insert,
// behind the advisory write lock serializing role mutations, so
// concurrent creates cannot both pass the checks.
func (s *roleService) CreateRole(req *CreateRoleRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   model.NotDefaultRole,
		Status:      model.StatusNormal,
	}
	if req.IsDefault != nil {
		role.IsDefault = *req.IsDefault
	}
	if req.Status != nil {
		role.Status = *req.Status
	}

	err := s.roleRepo.Transaction(func(tx repository.RoleRepository, _ repository.AccountRoleRepository) error {
		if err := tx.AcquireWriteLock(); err != nil {
			return err
		}

		existing, err := tx.FindByName(req.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrRoleNameExists
		}

		if role.IsDefault == model.DefaultRole {
			current, err := tx.FindDefault()
			if err != nil {
				return err
			}
			if current != nil {
				return ErrDefaultRoleExists
			}
		}

		return tx.Create(role)
	})
	if err != nil {
		return err
	}

	s.notifyChanged("role_created", role.ID)
	return nil
}

// UpdateRole applies a partial update. Setting the default flag is
// rejected unless the role currently holding it is this same role;
// re-affirming one's own default status is allowed.
func (s *roleService) UpdateRole(id uint, req *UpdateRoleRequest) (bool, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return false, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	var affected int64
	err := s.roleRepo.Transaction(func(tx repository.RoleRepository, _ repository.AccountRoleRepository) error {
		if err := tx.AcquireWriteLock(); err != nil {
			return err
		}

		if req.IsDefault != nil && *req.IsDefault == model.DefaultRole {
			current, err := tx.FindDefault()
			if err != nil {
				return err
			}
			if current != nil && current.ID != id {
				return ErrDefaultRoleExists
			}
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.IsDefault != nil {
			updates["is_default"] = *req.IsDefault
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			return nil
		}

		var err error
		affected, err = tx.UpdateByID(id, updates)
		return err
	})
	if err != nil {
		return false, err
	}

	if affected > 0 {
		s.notifyChanged("role_updated", id)
	}
	return affected > 0, nil
}

// DeleteRole soft-deletes a role. A role still referenced by any
// account-role link cannot be removed. The in-use check and the soft
// delete run in one transaction behind the write lock, with the link
// rows read FOR UPDATE, so a binding observed absent stays absent until
// the delete commits. A mutation touching zero rows is a logical
// failure, not an error.
func (s *roleService) DeleteRole(id uint) (bool, error) {
	var affected int64
	err := s.roleRepo.Transaction(func(tx repository.RoleRepository, links repository.AccountRoleRepository) error {
		if err := tx.AcquireWriteLock(); err != nil {
			return err
		}

		inUse, err := links.ExistsByRoleIDForUpdate(id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrRoleInUse
		}

		affected, err = tx.SoftDeleteByID(id)
		return err
	})
	if err != nil {
		return false, err
	}

	if affected > 0 {
		s.notifyChanged("role_deleted", id)
	}
	return affected > 0, nil
}

// GetRole returns nil without error when no active role matches
func (s *roleService) GetRole(id uint) (*model.Role, error) {
	return s.roleRepo.FindByID(id)
}

// ListRoles runs a paginated query. A status value outside the known
// enumeration is ignored rather than rejected.
func (s *roleService) ListRoles(req *RoleListRequest) (*RoleListResponse, error) {
	pageNumber := req.PageNumber
	if pageNumber <= 0 {
		pageNumber = defaultPageNumber
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	filter := repository.RoleFilter{
		Name:       req.Name,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
	if req.Status != nil {
		switch status := model.Status(*req.Status); status {
		case model.StatusNormal, model.StatusForbidden:
			filter.Status = &status
		}
	}

	data, total, err := s.roleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return &RoleListResponse{
		Data:       data,
		Total:      total,
		PageSize:   pageSize,
		PageNumber: pageNumber,
	}, nil
}

// notifyChanged tells connected consoles to re-resolve their menus
func (s *roleService) notifyChanged(action string, roleID uint) {
	if s.hub == nil {
		return
	}
	go s.hub.BroadcastJSON(map[string]interface{}{
		"type":    "menu_refresh",
		"action":  action,
		"role_id": roleID,
	})
}
