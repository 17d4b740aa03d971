package analytics

import (
	"math"
	"strconv"

	"petboard/internal/model"
)

// PercentChange computes the period-over-period delta. A zero previous
// value maps to +100 / 0 / -100 by the sign of cur so the result is always
// defined and bounded. This matches the deployed dashboard exactly and is
// deliberately not a true growth rate for negative baselines.
func PercentChange(cur, prev float64) float64 {
	if prev == 0 {
		switch {
		case cur > 0:
			return 100
		case cur < 0:
			return -100
		default:
			return 0
		}
	}
	return (cur - prev) / prev * 100
}

// ChangeColor classifies a percentage change by sign
func ChangeColor(percentage float64) string {
	if percentage > 0 {
		return model.KpiColorPositive
	}
	if percentage < 0 {
		return model.KpiColorNegative
	}
	return model.KpiColorNeutral
}

// ComputeKpis reduces the current and previous period bookings into the
// three summary metrics, in fixed order: Revenue, Orders, Product Sold.
func ComputeKpis(current, previous []model.Booking, f Formatter) []model.KpiMetric {
	revenueCur := sumRevenue(current)
	revenuePrev := sumRevenue(previous)

	ordersCur := float64(len(current))
	ordersPrev := float64(len(previous))

	soldCur := sumProductSold(current)
	soldPrev := sumProductSold(previous)

	pctRevenue := round2(PercentChange(revenueCur, revenuePrev))
	pctOrders := round2(PercentChange(ordersCur, ordersPrev))
	pctSold := round2(PercentChange(float64(soldCur), float64(soldPrev)))

	return []model.KpiMetric{
		{
			Name:       model.KpiRevenue,
			Value:      f.FormatLarge(revenueCur),
			Percentage: pctRevenue,
			Color:      ChangeColor(pctRevenue),
			Icon:       "fa-money-bill",
		},
		{
			Name:       model.KpiOrders,
			Value:      strconv.Itoa(len(current)),
			Percentage: pctOrders,
			Color:      ChangeColor(pctOrders),
			Icon:       "fa-shopping-cart",
		},
		{
			Name:       model.KpiProductSold,
			Value:      f.FormatGrouped(soldCur),
			Percentage: pctSold,
			Color:      ChangeColor(pctSold),
			Icon:       "fa-boxes",
		},
	}
}

func sumRevenue(bookings []model.Booking) float64 {
	var total float64
	for _, b := range bookings {
		total += b.TotalPrice.InexactFloat64()
	}
	return total
}

func sumProductSold(bookings []model.Booking) int {
	var total int
	for _, b := range bookings {
		for _, line := range b.ProductLines {
			total += line.QuantitySelected
		}
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
