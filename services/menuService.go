package services

import (
	"context"
	"log"

	"github.com/ammafood/amma-api/config"
	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/store"
)

func menuID(item models.MenuItem) string { return item.ID }

func (s *Service) localMenu() []models.MenuItem {
	return readLocal(s.local, store.MenuKey, config.InitialMenu)
}

func (s *Service) saveLocalMenu(items []models.MenuItem) error {
	return writeLocal(s.local, store.MenuKey, items)
}

// GetMenu returns the best-known menu snapshot. When the remote tier is
// reachable its result wins and is mirrored into the local cache; an empty
// remote collection means the menu was never migrated, so the local or seed
// menu is returned instead of an empty storefront.
func (s *Service) GetMenu(ctx context.Context) []models.MenuItem {
	if s.remote == nil {
		return s.localMenu()
	}
	items, err := s.remote.ListMenu(ctx)
	if err != nil {
		log.Println("remote menu fetch failed, using local snapshot:", err)
		return s.localMenu()
	}
	if len(items) == 0 {
		return s.localMenu()
	}
	if err := s.saveLocalMenu(items); err != nil {
		log.Println("menu mirror to local cache failed:", err)
	}
	return items
}

// SeedInitialMenu writes the seed menu locally and best-effort mirrors each
// item remotely under its fixed id.
func (s *Service) SeedInitialMenu(ctx context.Context) error {
	seed := config.InitialMenu()
	if err := s.saveLocalMenu(seed); err != nil {
		return err
	}
	if s.remote == nil {
		return nil
	}
	for _, item := range seed {
		if err := s.remote.SetMenuItem(ctx, item); err != nil {
			log.Println("could not seed remote menu:", err)
			break
		}
	}
	return nil
}

// SubscribeToMenu delivers the current menu immediately and then on every
// poll tick. The unsubscribe function is safe to call more than once.
func (s *Service) SubscribeToMenu(cb func([]models.MenuItem)) func() {
	return startSubscription(menuPollInterval, func() []models.MenuItem {
		return s.GetMenu(context.Background())
	}, cb)
}

// SaveMenuItem persists an item. Records without a server-assigned id are
// created remotely first so the server id can be adopted before the local
// write; everything else is an upsert by id. Remote failures are swallowed,
// only the local capacity error is returned.
func (s *Service) SaveMenuItem(ctx context.Context, item *models.MenuItem) error {
	if s.remote != nil {
		if isPlaceholderID(item.ID) {
			created := *item
			created.ID = ""
			if err := s.remote.CreateMenuItem(ctx, &created); err != nil {
				log.Println("remote menu create failed:", err)
			} else {
				item.ID = created.ID
			}
		} else {
			if err := s.remote.SetMenuItem(ctx, *item); err != nil {
				log.Println("remote menu save failed:", err)
			}
		}
	}
	if item.ID == "" {
		item.ID = newPlaceholderID(localIDPrefix)
	}
	return s.saveLocalMenu(upsertByID(s.localMenu(), menuID, *item))
}

// DeleteMenuItem removes the item locally right away, then best effort
// remotely.
func (s *Service) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.saveLocalMenu(removeByID(s.localMenu(), menuID, id)); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.DeleteMenuItem(ctx, id); err != nil {
			log.Println("remote menu delete failed:", err)
		}
	}
	return nil
}
