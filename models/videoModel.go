package models

// PreviewVideo is the storefront hero video. At most one video is meant to be
// active at a time; activating one deactivates the rest (enforced by the data
// service, not the storage layer).
type PreviewVideo struct {
	ID        string `json:"id" gorm:"primaryKey;size:64"`
	URL       string `json:"url"`
	Poster    string `json:"poster,omitempty" gorm:"type:longtext"`
	IsActive  bool   `json:"isActive"`
	CreatedAt int64  `json:"createdAt"`
}

func (PreviewVideo) TableName() string {
	return "preview_videos"
}
