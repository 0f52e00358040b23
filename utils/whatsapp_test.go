package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/ammafood/amma-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhatsAppMessage(t *testing.T) {
	customer := models.CustomerInfo{Name: "Asha", Phone: "9876543210", Address: "12 Temple Street"}
	items := []models.CartItem{
		{MenuItem: models.MenuItem{Name: "Butter Chicken", Price: 320}, Quantity: 2},
		{MenuItem: models.MenuItem{Name: "Garlic Naan", Price: 60}, Quantity: 3},
	}

	message := BuildWhatsAppMessage("Amma Food Center", "₹", customer, items, 820)

	assert.Contains(t, message, "*New Order @ Amma Food Center*")
	assert.Contains(t, message, "*Customer:* Asha")
	assert.Contains(t, message, "*Phone:* 9876543210")
	assert.Contains(t, message, "*Address:* 12 Temple Street")
	assert.Contains(t, message, "▪ 2 x Butter Chicken (₹320)")
	assert.Contains(t, message, "▪ 3 x Garlic Naan (₹60)")
	assert.Contains(t, message, "*Total Amount: ₹820*")
}

func TestBuildWhatsAppLink(t *testing.T) {
	customer := models.CustomerInfo{Name: "Asha", Phone: "9876543210", Address: "12 Temple Street"}
	items := []models.CartItem{
		{MenuItem: models.MenuItem{Name: "Masala Dosa", Price: 120}, Quantity: 1},
	}

	link := BuildWhatsAppLink("919876543210", "Amma Food Center", "₹", customer, items, 120)

	require.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Masala Dosa")
	assert.Contains(t, text, "*Total Amount: ₹120*")
}
