package services

import (
	"context"
	"log"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/store"
)

func announcementID(item models.Announcement) string { return item.ID }

func (s *Service) localAnnouncements() []models.Announcement {
	return readLocal(s.local, store.AnnouncementsKey, func() []models.Announcement {
		return []models.Announcement{}
	})
}

func (s *Service) saveLocalAnnouncements(items []models.Announcement) error {
	return writeLocal(s.local, store.AnnouncementsKey, items)
}

// GetAnnouncements returns the best-known announcement list, remote winning
// and mirrored to local when reachable.
func (s *Service) GetAnnouncements(ctx context.Context) []models.Announcement {
	if s.remote == nil {
		return s.localAnnouncements()
	}
	items, err := s.remote.ListAnnouncements(ctx)
	if err != nil {
		log.Println("remote announcements fetch failed, using local snapshot:", err)
		return s.localAnnouncements()
	}
	if err := s.saveLocalAnnouncements(items); err != nil {
		log.Println("announcement mirror to local cache failed:", err)
	}
	return items
}

// ActiveAnnouncements filters for the ones the storefront rotates through.
func (s *Service) ActiveAnnouncements(ctx context.Context) []models.Announcement {
	active := []models.Announcement{}
	for _, item := range s.GetAnnouncements(ctx) {
		if item.IsActive {
			active = append(active, item)
		}
	}
	return active
}

// SubscribeToAnnouncements delivers the current list immediately and on every
// poll tick.
func (s *Service) SubscribeToAnnouncements(cb func([]models.Announcement)) func() {
	return startSubscription(menuPollInterval, func() []models.Announcement {
		return s.GetAnnouncements(context.Background())
	}, cb)
}

// SaveAnnouncement persists an announcement, adopting a server id on remote
// create the same way menu items do.
func (s *Service) SaveAnnouncement(ctx context.Context, item *models.Announcement) error {
	if s.remote != nil {
		if isPlaceholderID(item.ID) {
			created := *item
			created.ID = ""
			if err := s.remote.CreateAnnouncement(ctx, &created); err != nil {
				log.Println("remote announcement create failed:", err)
			} else {
				item.ID = created.ID
			}
		} else {
			if err := s.remote.SetAnnouncement(ctx, *item); err != nil {
				log.Println("remote announcement save failed:", err)
			}
		}
	}
	if item.ID == "" {
		item.ID = newPlaceholderID(announcementIDPrefix)
	}
	return s.saveLocalAnnouncements(upsertByID(s.localAnnouncements(), announcementID, *item))
}

// DeleteAnnouncement removes locally first, then best effort remotely.
func (s *Service) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.saveLocalAnnouncements(removeByID(s.localAnnouncements(), announcementID, id)); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.DeleteAnnouncement(ctx, id); err != nil {
			log.Println("remote announcement delete failed:", err)
		}
	}
	return nil
}
