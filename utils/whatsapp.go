package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ammafood/amma-api/models"
)

// BuildWhatsAppMessage formats the order summary that pre-fills the chat:
// store header, customer block, itemized lines and the frozen total.
func BuildWhatsAppMessage(storeName, currency string, customer models.CustomerInfo, items []models.CartItem, total float64) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("▪ %d x %s (%s%s)", item.Quantity, item.Name, currency, formatAmount(item.Price)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*New Order @ %s* 🥘\n\n", storeName)
	fmt.Fprintf(&b, "*Customer:* %s\n", customer.Name)
	fmt.Fprintf(&b, "*Phone:* %s\n", customer.Phone)
	fmt.Fprintf(&b, "*Address:* %s\n\n", customer.Address)
	fmt.Fprintf(&b, "*Order Details:*\n%s\n", strings.Join(lines, "\n"))
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "*Total Amount: %s%s*", currency, formatAmount(total))
	return b.String()
}

// BuildWhatsAppLink returns the wa.me deep link that completes checkout.
func BuildWhatsAppLink(number, storeName, currency string, customer models.CustomerInfo, items []models.CartItem, total float64) string {
	message := BuildWhatsAppMessage(storeName, currency, customer, items, total)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
