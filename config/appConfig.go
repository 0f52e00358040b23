package config

import "github.com/ammafood/amma-api/models"

// Store-wide defaults. The WhatsApp number and categories are only the
// fallback; the admin dashboard edits the live values through settings.
const (
	StoreName             = "Amma Food Center"
	Currency              = "₹"
	DefaultWhatsAppNumber = "919876543210"
	DemoAdminEmail        = "admin@ammafood.com"
	DemoAdminPassword     = "admin"
	DemoAdminUID          = "demo_user_123"
)

// DefaultCategories defines the storefront filter tabs when no settings have
// been saved yet. Order matters.
func DefaultCategories() []string {
	return []string{"Starter", "Main Course", "Breads", "Rice", "Dessert", "Beverage"}
}

// InitialMenu is the seed menu shown before the admin has created any items.
// Returned fresh on each call so callers can mutate their copy.
func InitialMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        "Butter Chicken",
			Description: "Rich tomato gravy with tender chicken pieces",
			Price:       320,
			Type:        models.ItemTypeNonVeg,
			Category:    "Main Course",
			IsAvailable: true,
			Image:       "https://picsum.photos/400/300?random=1",
		},
		{
			ID:          "2",
			Name:        "Paneer Tikka Masala",
			Description: "Grilled paneer cubes in spicy gravy",
			Price:       280,
			Type:        models.ItemTypeVeg,
			Category:    "Main Course",
			IsAvailable: true,
			Image:       "https://picsum.photos/400/300?random=2",
		},
		{
			ID:          "3",
			Name:        "Chicken Biryani",
			Description: "Aromatic basmati rice cooked with spices and chicken",
			Price:       350,
			Type:        models.ItemTypeNonVeg,
			Category:    "Rice",
			IsAvailable: true,
			Image:       "https://picsum.photos/400/300?random=3",
		},
		{
			ID:          "4",
			Name:        "Garlic Naan",
			Description: "Oven-baked flatbread topped with garlic",
			Price:       60,
			Type:        models.ItemTypeVeg,
			Category:    "Breads",
			IsAvailable: true,
			Image:       "https://picsum.photos/400/300?random=4",
		},
		{
			ID:          "5",
			Name:        "Gulab Jamun",
			Description: "Deep fried milk solids soaked in sugar syrup",
			Price:       80,
			Type:        models.ItemTypeVeg,
			Category:    "Dessert",
			IsAvailable: true,
			Image:       "https://picsum.photos/400/300?random=5",
		},
		{
			ID:          "6",
			Name:        "Masala Dosa",
			Description: "Crispy rice crepe filled with spiced potato",
			Price:       120,
			Type:        models.ItemTypeVeg,
			Category:    "Main Course",
			IsAvailable: false,
			Image:       "https://picsum.photos/400/300?random=6",
		},
	}
}

// DefaultSettings builds the settings record used before anything is saved.
func DefaultSettings() models.AppSettings {
	return models.AppSettings{
		ID:             models.SettingsDocID,
		WhatsAppNumber: DefaultWhatsAppNumber,
		Categories:     DefaultCategories(),
	}
}
