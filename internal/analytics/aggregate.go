package analytics

import (
	"time"

	"github.com/google/uuid"
)

// SaleRecord is one product line flattened together with its parent booking.
// This is the input shape of every aggregation run.
type SaleRecord struct {
	BookingID        uuid.UUID
	DeliveryTime     time.Time
	ProductName      string
	Quantity         int
	QuantitySelected int
	LineTotal        float64
}

// KeyFunc derives the grouping key for a record
type KeyFunc func(SaleRecord) string

// MeasureFunc selects the numeric field summed per group
type MeasureFunc func(SaleRecord) float64

// Group is one aggregation bucket: a key, the running total of the chosen
// measure, and the distinct set of bookings that contributed to it.
type Group struct {
	Key        string
	Total      float64
	Count      int
	BookingIDs []uuid.UUID

	seen map[uuid.UUID]struct{}
}

// ByDeliveryDate keys records by the booking's delivery timestamp truncated
// to a calendar date in loc (time-series charts).
func ByDeliveryDate(loc *time.Location) KeyFunc {
	return func(r SaleRecord) string {
		return DateKey(r.DeliveryTime, loc)
	}
}

// ByProductName keys records by product display name (category charts)
func ByProductName(r SaleRecord) string {
	return r.ProductName
}

// MeasureLineTotal sums line revenue
func MeasureLineTotal(r SaleRecord) float64 {
	return r.LineTotal
}

// MeasureQuantitySelected sums sold units
func MeasureQuantitySelected(r SaleRecord) float64 {
	return float64(r.QuantitySelected)
}

// Aggregate buckets records by keyFn and sums measureFn per bucket.
// Groups are returned in first-seen key order; each group's BookingIDs
// holds every contributing booking exactly once. No records yields an
// empty slice.
func Aggregate(records []SaleRecord, keyFn KeyFunc, measureFn MeasureFunc) []Group {
	index := make(map[string]int, len(records))
	groups := make([]Group, 0)

	for _, rec := range records {
		key := keyFn(rec)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{
				Key:  key,
				seen: make(map[uuid.UUID]struct{}),
			})
		}

		g := &groups[i]
		g.Total += measureFn(rec)
		g.Count += rec.QuantitySelected
		if _, dup := g.seen[rec.BookingID]; !dup {
			g.seen[rec.BookingID] = struct{}{}
			g.BookingIDs = append(g.BookingIDs, rec.BookingID)
		}
	}

	return groups
}
