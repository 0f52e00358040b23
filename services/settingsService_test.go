package services

import (
	"context"
	"testing"

	"github.com/ammafood/amma-api/config"
	"github.com/ammafood/amma-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	svc := newLocalService()

	settings := svc.GetSettings(context.Background())
	assert.Equal(t, config.DefaultWhatsAppNumber, settings.WhatsAppNumber)
	assert.Equal(t, config.DefaultCategories(), []string(settings.Categories))
}

func TestSettingsRoundTrip(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	saved := models.AppSettings{
		WhatsAppNumber: "917700112233",
		Categories:     []string{"Tiffin", "Meals"},
		Sheets: models.SheetsConfig{
			SpreadsheetID: "sheet-1",
			SheetName:     "Orders",
			AccessToken:   SimulatedToken,
			Enabled:       true,
		},
	}
	require.NoError(t, svc.SaveSettings(ctx, saved))

	got := svc.GetSettings(ctx)
	assert.Equal(t, saved.WhatsAppNumber, got.WhatsAppNumber)
	assert.Equal(t, saved.Categories, got.Categories)
	assert.Equal(t, saved.Sheets, got.Sheets)
}

func TestSettingsMergeOverDefaults(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	// Omitted fields come back from the defaults.
	require.NoError(t, svc.SaveSettings(ctx, models.AppSettings{WhatsAppNumber: "918800990011"}))

	got := svc.GetSettings(ctx)
	assert.Equal(t, "918800990011", got.WhatsAppNumber)
	assert.Equal(t, config.DefaultCategories(), []string(got.Categories))
}

func TestAddCategory(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	require.NoError(t, svc.AddCategory(ctx, "Chaat"))
	settings := svc.GetSettings(ctx)
	assert.Contains(t, []string(settings.Categories), "Chaat")

	assert.ErrorIs(t, svc.AddCategory(ctx, "Chaat"), ErrCategoryExists)
}

func TestDeleteCategoryLeavesMenuItemsDangling(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	require.NoError(t, svc.DeleteCategory(ctx, "Dessert"))

	settings := svc.GetSettings(ctx)
	assert.NotContains(t, []string(settings.Categories), "Dessert")

	// Gulab Jamun keeps its now-orphaned category string unchanged.
	var found bool
	for _, item := range svc.GetMenu(ctx) {
		if item.Name == "Gulab Jamun" {
			found = true
			assert.Equal(t, "Dessert", item.Category)
		}
	}
	require.True(t, found)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, "Dessert"), ErrCategoryNotFound)
}

func TestRenameCategoryCascadesToMenu(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	require.NoError(t, svc.RenameCategory(ctx, "Main Course", "Mains"))

	settings := svc.GetSettings(ctx)
	assert.Contains(t, []string(settings.Categories), "Mains")
	assert.NotContains(t, []string(settings.Categories), "Main Course")

	for _, item := range svc.GetMenu(ctx) {
		assert.NotEqual(t, "Main Course", item.Category)
	}

	assert.ErrorIs(t, svc.RenameCategory(ctx, "Main Course", "Mains"), ErrCategoryNotFound)
}

func TestRemoteSettingsWinOverLocal(t *testing.T) {
	remote := newMockRemote()
	remote.settings = &models.AppSettings{
		ID:             models.SettingsDocID,
		WhatsAppNumber: "919999888877",
	}
	svc := newRemoteService(remote)

	got := svc.GetSettings(context.Background())
	assert.Equal(t, "919999888877", got.WhatsAppNumber)
	// Fields absent remotely still merge up from the defaults.
	assert.Equal(t, config.DefaultCategories(), []string(got.Categories))
}
