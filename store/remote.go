package store

import (
	"context"
	"errors"

	"github.com/ammafood/amma-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Remote is the cloud document-store tier. It is optional: when no database
// is configured the data service runs in local-only mode with a nil Remote.
// Create calls assign a server id before inserting; Set calls upsert by id.
type Remote interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	SetMenuItem(ctx context.Context, item models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error

	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, item *models.Announcement) error
	SetAnnouncement(ctx context.Context, item models.Announcement) error
	DeleteAnnouncement(ctx context.Context, id string) error

	ListVideos(ctx context.Context) ([]models.PreviewVideo, error)
	CreateVideo(ctx context.Context, video *models.PreviewVideo) error
	SetVideo(ctx context.Context, video models.PreviewVideo) error
	SetVideoActive(ctx context.Context, id string, active bool) error
	DeleteVideo(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	UpdateOrderStatus(ctx context.Context, id, status string) error

	GetSettings(ctx context.Context) (models.AppSettings, bool, error)
	SaveSettings(ctx context.Context, settings models.AppSettings) error

	FindAdminByEmail(ctx context.Context, email string) (models.AdminAccount, error)
}

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("record not found")

// GormRemote implements Remote on top of a relational database, one table
// per collection.
type GormRemote struct {
	db *gorm.DB
}

func NewGormRemote(db *gorm.DB) *GormRemote {
	return &GormRemote{db: db}
}

func (r *GormRemote) upsert(ctx context.Context, record any) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
}

// --- Menu ---

func (r *GormRemote) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *GormRemote) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	item.ID = uuid.NewString()
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormRemote) SetMenuItem(ctx context.Context, item models.MenuItem) error {
	return r.upsert(ctx, &item)
}

func (r *GormRemote) DeleteMenuItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id).Error
}

// --- Announcements ---

func (r *GormRemote) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var items []models.Announcement
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *GormRemote) CreateAnnouncement(ctx context.Context, item *models.Announcement) error {
	item.ID = uuid.NewString()
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormRemote) SetAnnouncement(ctx context.Context, item models.Announcement) error {
	return r.upsert(ctx, &item)
}

func (r *GormRemote) DeleteAnnouncement(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Announcement{}, "id = ?", id).Error
}

// --- Preview videos ---

func (r *GormRemote) ListVideos(ctx context.Context) ([]models.PreviewVideo, error) {
	var videos []models.PreviewVideo
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&videos).Error
	return videos, err
}

func (r *GormRemote) CreateVideo(ctx context.Context, video *models.PreviewVideo) error {
	video.ID = uuid.NewString()
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *GormRemote) SetVideo(ctx context.Context, video models.PreviewVideo) error {
	return r.upsert(ctx, &video)
}

func (r *GormRemote) SetVideoActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&models.PreviewVideo{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *GormRemote) DeleteVideo(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.PreviewVideo{}, "id = ?", id).Error
}

// --- Orders ---

func (r *GormRemote) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Order("timestamp desc").Find(&orders).Error
	return orders, err
}

func (r *GormRemote) CreateOrder(ctx context.Context, order *models.Order) error {
	order.ID = uuid.NewString()
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormRemote) UpdateOrderStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// --- Settings singleton ---

func (r *GormRemote) GetSettings(ctx context.Context) (models.AppSettings, bool, error) {
	var settings models.AppSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", models.SettingsDocID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settings, false, nil
	}
	if err != nil {
		return settings, false, err
	}
	return settings, true, nil
}

func (r *GormRemote) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	settings.ID = models.SettingsDocID
	return r.upsert(ctx, &settings)
}

// --- Admin accounts ---

func (r *GormRemote) FindAdminByEmail(ctx context.Context, email string) (models.AdminAccount, error) {
	var account models.AdminAccount
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account, ErrNotFound
	}
	return account, err
}
