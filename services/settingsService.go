package services

import (
	"context"
	"log"

	"github.com/ammafood/amma-api/config"
	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/store"
)

// mergeSettings lays stored values over base, field by field, so partially
// saved records still come back complete.
func mergeSettings(base, stored models.AppSettings) models.AppSettings {
	merged := base
	if stored.WhatsAppNumber != "" {
		merged.WhatsAppNumber = stored.WhatsAppNumber
	}
	if len(stored.Categories) > 0 {
		merged.Categories = stored.Categories
	}
	if stored.Sheets != (models.SheetsConfig{}) {
		merged.Sheets = stored.Sheets
	}
	merged.ID = models.SettingsDocID
	return merged
}

func (s *Service) localSettings() models.AppSettings {
	stored := readLocal(s.local, store.SettingsKey, func() models.AppSettings {
		return config.DefaultSettings()
	})
	return mergeSettings(config.DefaultSettings(), stored)
}

func (s *Service) saveLocalSettings(settings models.AppSettings) error {
	return writeLocal(s.local, store.SettingsKey, settings)
}

// GetSettings returns the settings singleton: local defaults merged under the
// remote document when one exists.
func (s *Service) GetSettings(ctx context.Context) models.AppSettings {
	local := s.localSettings()
	if s.remote == nil {
		return local
	}
	remote, exists, err := s.remote.GetSettings(ctx)
	if err != nil {
		log.Println("remote settings fetch failed, using local snapshot:", err)
		return local
	}
	if !exists {
		return local
	}
	return mergeSettings(local, remote)
}

// SaveSettings writes through to the local cache and best effort remotely.
func (s *Service) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	settings.ID = models.SettingsDocID
	if err := s.saveLocalSettings(settings); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.SaveSettings(ctx, settings); err != nil {
			log.Println("remote settings save failed:", err)
		}
	}
	return nil
}

// SubscribeToSettings delivers the merged settings immediately and on every
// poll tick.
func (s *Service) SubscribeToSettings(cb func(models.AppSettings)) func() {
	return startSubscription(orderPollInterval, func() models.AppSettings {
		return s.GetSettings(context.Background())
	}, cb)
}

// AddCategory appends a new storefront category.
func (s *Service) AddCategory(ctx context.Context, name string) error {
	settings := s.GetSettings(ctx)
	for _, existing := range settings.Categories {
		if existing == name {
			return ErrCategoryExists
		}
	}
	settings.Categories = append(settings.Categories, name)
	return s.SaveSettings(ctx, settings)
}

// DeleteCategory removes a category from settings only. Menu items that
// reference it keep their now-dangling category string unchanged.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	settings := s.GetSettings(ctx)
	kept := settings.Categories[:0]
	found := false
	for _, existing := range settings.Categories {
		if existing == name {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return ErrCategoryNotFound
	}
	settings.Categories = kept
	return s.SaveSettings(ctx, settings)
}

// RenameCategory renames a category and cascades the rename to every menu
// item referencing it.
func (s *Service) RenameCategory(ctx context.Context, from, to string) error {
	settings := s.GetSettings(ctx)
	found := false
	for i, existing := range settings.Categories {
		if existing == from {
			settings.Categories[i] = to
			found = true
		}
	}
	if !found {
		return ErrCategoryNotFound
	}
	if err := s.SaveSettings(ctx, settings); err != nil {
		return err
	}
	for _, item := range s.GetMenu(ctx) {
		if item.Category != from {
			continue
		}
		item.Category = to
		if err := s.SaveMenuItem(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}
