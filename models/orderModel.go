package models

import "gorm.io/datatypes"

// CartItem is a menu item plus a quantity. It only exists inside an active
// checkout session and inside order line-item snapshots.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CustomerInfo is the delivery contact captured at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order statuses. The canonical progression is
// pending -> confirmed -> preparing -> out_for_delivery -> delivered,
// with confirmed skippable and cancelled reachable from pending or confirmed.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

var orderTransitions = map[string][]string{
	StatusPending:        {StatusConfirmed, StatusPreparing, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order platforms.
const (
	PlatformWhatsApp = "whatsapp"
	PlatformWeb      = "web"
)

// Order is a placed storefront order. Items are a snapshot copy of the cart
// at checkout, so later menu edits never alter historical orders, and
// TotalAmount is frozen at creation. Orders are never deleted; admins only
// move them through status transitions.
type Order struct {
	ID          string                        `json:"id" gorm:"primaryKey;size:64"`
	Customer    CustomerInfo                  `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Items       datatypes.JSONSlice[CartItem] `json:"items"`
	TotalAmount float64                       `json:"totalAmount"`
	Status      string                        `json:"status"`
	Timestamp   int64                         `json:"timestamp" gorm:"index"`
	Platform    string                        `json:"platform"`
}

func (Order) TableName() string {
	return "orders"
}

// ItemsTotal is the sum of price*quantity over the order's line items.
func (o Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// DailySales is one bucket of the admin analytics chart.
type DailySales struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Orders int     `json:"orders"`
}
