package models

// AdminAccount is a persisted admin credential record, used when the remote
// tier is configured. Password holds a bcrypt hash.
type AdminAccount struct {
	ID       string `json:"id" gorm:"primaryKey;size:64"`
	Email    string `json:"email" gorm:"uniqueIndex;size:191"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

func (AdminAccount) TableName() string {
	return "admin_accounts"
}

// AdminUser is the ephemeral session identity handed to the dashboard.
type AdminUser struct {
	Email       string `json:"email"`
	UID         string `json:"uid"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// SessionToken is the demo-mode session record kept in session storage.
type SessionToken struct {
	Email       string `json:"email"`
	UID         string `json:"uid"`
	Expires     int64  `json:"expires"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
