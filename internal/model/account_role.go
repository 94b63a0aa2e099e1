package model

// AccountRole links an account to a role it holds. One account may hold
// multiple roles; one role may be held by multiple accounts.
type AccountRole struct {
	BaseModel
	AccountID uint `gorm:"not null;index" json:"account_id"`
	RoleID    uint `gorm:"not null;index" json:"role_id"`
}
