package models

// MenuItem is a single dish on the storefront menu. Category is a free-form
// string expected to match one of the configured categories, but this is not
// enforced at write time; deleting a category leaves items dangling.
type MenuItem struct {
	ID          string  `json:"id" gorm:"primaryKey;size:64"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"isAvailable"`
	Image       string  `json:"image,omitempty" gorm:"type:longtext"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// Item types shown as the veg / non-veg badge.
const (
	ItemTypeVeg    = "veg"
	ItemTypeNonVeg = "non-veg"
)
