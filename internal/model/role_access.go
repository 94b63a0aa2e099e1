package model

// GrantType classifies role-access links by grant kind. Not the same
// enumeration as AccessType: a GrantTypeMenu link may point at an access
// entry of any catalog type.
type GrantType int

const (
	GrantTypeMenu GrantType = 2 // menu visibility grant
	GrantTypeAPI  GrantType = 3 // interface/action grant
)

// RoleAccess links a role to an access entry it has been granted
type RoleAccess struct {
	BaseModel
	RoleID   uint      `gorm:"not null;index" json:"role_id"`
	AccessID uint      `gorm:"not null;index" json:"access_id"`
	Type     GrantType `gorm:"not null" json:"type"`
}
