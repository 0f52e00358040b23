package services

import (
	"context"
	"sort"
	"time"

	"github.com/ammafood/amma-api/models"
)

// GetSalesData buckets non-cancelled orders by calendar day and returns the
// most recent days, oldest first, capped at seven buckets.
func (s *Service) GetSalesData(ctx context.Context) []models.DailySales {
	type bucket struct {
		day    time.Time
		amount float64
		count  int
	}
	buckets := map[string]*bucket{}
	for _, order := range s.GetOrders(ctx) {
		if order.Status == models.StatusCancelled {
			continue
		}
		t := time.UnixMilli(order.Timestamp)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		key := day.Format("Jan 2")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: day}
			buckets[key] = b
		}
		b.amount += order.TotalAmount
		b.count++
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].day.Before(ordered[j].day) })
	if len(ordered) > 7 {
		ordered = ordered[len(ordered)-7:]
	}

	sales := make([]models.DailySales, 0, len(ordered))
	for _, b := range ordered {
		sales = append(sales, models.DailySales{
			Date:   b.day.Format("Jan 2"),
			Amount: b.amount,
			Orders: b.count,
		})
	}
	return sales
}
