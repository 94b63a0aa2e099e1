package model

// Status enumerates availability of roles and accounts
type Status int

const (
	StatusForbidden Status = 0
	StatusNormal    Status = 1
)

// DefaultFlag marks whether a role is the auto-assignable default.
// At most one active role may carry DefaultRole.
type DefaultFlag int

const (
	NotDefaultRole DefaultFlag = 0
	DefaultRole    DefaultFlag = 1
)

// Role represents a named permission bundle
type Role struct {
	BaseModel
	Name        string      `gorm:"type:varchar(100);not null;index" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	IsDefault   DefaultFlag `gorm:"default:0" json:"is_default"`
	Status      Status      `gorm:"default:1" json:"status"`
}
