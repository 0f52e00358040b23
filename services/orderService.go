package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/store"
	"github.com/ammafood/amma-api/utils"
)

func orderID(order models.Order) string { return order.ID }

func (s *Service) localOrders() []models.Order {
	return readLocal(s.local, store.OrdersKey, func() []models.Order {
		return []models.Order{}
	})
}

func (s *Service) saveLocalOrders(orders []models.Order) error {
	return writeLocal(s.local, store.OrdersKey, orders)
}

// ValidateCustomer checks the checkout form fields. A non-nil result means
// the order must not be created.
func ValidateCustomer(customer models.CustomerInfo) error {
	fields := map[string]string{}
	if strings.TrimSpace(customer.Name) == "" {
		fields["name"] = "Name is required"
	}
	if customer.Phone == "" {
		fields["phone"] = "Mobile number is required"
	} else if !utils.ValidPhone(customer.Phone) {
		fields["phone"] = "Enter valid 10-digit Indian number"
	}
	if strings.TrimSpace(customer.Address) == "" {
		fields["address"] = "Delivery address required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateOrder validates the customer, freezes the total from the line-item
// snapshot, persists the order (remote id adopted when available) and then
// forwards it to the sheets sink best effort. The returned id is never empty
// on success.
func (s *Service) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	if err := ValidateCustomer(order.Customer); err != nil {
		return "", err
	}
	if len(order.Items) == 0 {
		return "", &ValidationError{Fields: map[string]string{"items": "Cart is empty"}}
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return "", &ValidationError{Fields: map[string]string{"items": "Item quantity must be positive"}}
		}
	}

	order.Status = models.StatusPending
	order.Timestamp = time.Now().UnixMilli()
	order.TotalAmount = order.ItemsTotal()
	if order.Platform == "" {
		order.Platform = models.PlatformWhatsApp
	}

	if s.remote != nil {
		created := *order
		created.ID = ""
		if err := s.remote.CreateOrder(ctx, &created); err != nil {
			log.Println("remote order create failed:", err)
		} else {
			order.ID = created.ID
		}
	}
	if order.ID == "" || isPlaceholderID(order.ID) {
		order.ID = newPlaceholderID(orderIDPrefix)
	}

	// Newest first.
	orders := append([]models.Order{*order}, s.localOrders()...)
	if err := s.saveLocalOrders(orders); err != nil {
		return "", err
	}

	s.dispatchOrder(ctx, *order)
	return order.ID, nil
}

// GetOrders returns the best-known order list, newest first.
func (s *Service) GetOrders(ctx context.Context) []models.Order {
	if s.remote == nil {
		return s.localOrders()
	}
	orders, err := s.remote.ListOrders(ctx)
	if err != nil {
		log.Println("remote orders fetch failed, using local snapshot:", err)
		return s.localOrders()
	}
	if err := s.saveLocalOrders(orders); err != nil {
		log.Println("order mirror to local cache failed:", err)
	}
	return orders
}

// SubscribeToOrders delivers the current order list immediately and on every
// poll tick.
func (s *Service) SubscribeToOrders(cb func([]models.Order)) func() {
	return startSubscription(orderPollInterval, func() []models.Order {
		return s.GetOrders(context.Background())
	}, cb)
}

// UpdateOrderStatus moves an order along the status progression. The total
// is never recomputed. The local write is authoritative; the remote update
// and the sheets re-sync are best effort.
func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	orders := s.localOrders()
	var updated *models.Order
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if !models.CanTransition(orders[i].Status, status) {
			return &InvalidTransitionError{From: orders[i].Status, To: status}
		}
		orders[i].Status = status
		updated = &orders[i]
		break
	}
	if updated == nil {
		return ErrOrderNotFound
	}
	if err := s.saveLocalOrders(orders); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.UpdateOrderStatus(ctx, id, status); err != nil {
			log.Println("remote order status update failed:", err)
		}
	}
	s.dispatchOrder(ctx, *updated)
	return nil
}

// dispatchOrder forwards an order event to the sheets sink when one is
// configured and enabled. Failures are logged and dropped; there is no retry
// queue and the triggering operation is never rolled back.
func (s *Service) dispatchOrder(ctx context.Context, order models.Order) {
	if s.sheets == nil {
		return
	}
	settings := s.GetSettings(ctx)
	if !settings.Sheets.Enabled {
		return
	}
	if err := s.sheets.AppendOrder(ctx, settings.Sheets, order); err != nil {
		log.Println("sheets order sync failed:", err)
		return
	}
	settings.Sheets.LastSyncedAt = time.Now().UnixMilli()
	if err := s.SaveSettings(ctx, settings); err != nil {
		log.Println("could not record sheets sync time:", err)
	}
}
