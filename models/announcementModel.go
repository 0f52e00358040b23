package models

// Announcement types.
const (
	AnnouncementText  = "text"
	AnnouncementImage = "image"
)

// Announcement is a storefront banner. Several may be active at once; the
// storefront rotates through the active ones.
type Announcement struct {
	ID       string `json:"id" gorm:"primaryKey;size:64"`
	Type     string `json:"type"`
	Content  string `json:"content" gorm:"type:longtext"`
	IsActive bool   `json:"isActive"`
}

func (Announcement) TableName() string {
	return "announcements"
}
