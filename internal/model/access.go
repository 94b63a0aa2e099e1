package model

// AccessType classifies catalog entries. It is a separate enumeration
// from GrantType even though both use the value 2 for menus.
type AccessType int

const (
	AccessTypeModule AccessType = 1 // grouping node
	AccessTypeMenu   AccessType = 2 // visible menu
	AccessTypeAction AccessType = 3 // permission-only action, never shown in menus
)

// Access represents a navigable catalog entry (module, menu or action)
type Access struct {
	BaseModel
	ModuleName string     `gorm:"type:varchar(100)" json:"module_name"`
	ActionName string     `gorm:"type:varchar(100)" json:"action_name"`
	Type       AccessType `gorm:"not null;index" json:"type"`
	ParentID   uint       `gorm:"default:0;index" json:"parent_id"` // 0 = root entry
	URL        string     `gorm:"type:varchar(255)" json:"url"`
	Sort       int        `gorm:"default:1" json:"sort"`
	Icon       string     `gorm:"type:varchar(100)" json:"icon"`
}

// MenuItem is the view shape returned by menu resolution. ParentID is
// passed through raw; the console builds the tree client-side.
type MenuItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ParentID uint   `json:"parent_id"`
	URL      string `json:"url"`
	Sort     int    `json:"sort"`
	Icon     string `json:"icon"`
}

// ToMenuItem converts Access to MenuItem. Display name falls back from
// module name to action name.
func (a *Access) ToMenuItem() MenuItem {
	name := a.ModuleName
	if name == "" {
		name = a.ActionName
	}
	return MenuItem{
		ID:       a.ID,
		Name:     name,
		ParentID: a.ParentID,
		URL:      a.URL,
		Sort:     a.Sort,
		Icon:     a.Icon,
	}
}
