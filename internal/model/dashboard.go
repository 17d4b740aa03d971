package model

import (
	"time"

	"github.com/google/uuid"
)

// KPI metric names, fixed order in every response
const (
	KpiRevenue     = "Revenue"
	KpiOrders      = "Orders"
	KpiProductSold = "Product Sold"
)

// KPI color classifications derived from the sign of the change
const (
	KpiColorPositive = "green"
	KpiColorNegative = "red"
	KpiColorNeutral  = "gray"
)

// KpiMetric is one summary card: formatted value plus change vs. the
// previous period of equal length
type KpiMetric struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
}

// KpiResponse wraps the three metrics with the periods they compare
type KpiResponse struct {
	Metrics       []KpiMetric `json:"metrics"`
	PeriodStart   time.Time   `json:"period_start"`
	PeriodEnd     time.Time   `json:"period_end"`
	PreviousStart time.Time   `json:"previous_start"`
	PreviousEnd   time.Time   `json:"previous_end"`
}

// ChartDataset mirrors a Chart.js dataset. BookingIDs is per-point
// side-channel metadata used to resolve clicks back to source records.
type ChartDataset struct {
	Label           string        `json:"label"`
	Data            []float64     `json:"data"`
	BackgroundColor []string      `json:"backgroundColor"`
	BorderColor     []string      `json:"borderColor"`
	BorderWidth     int           `json:"borderWidth"`
	BookingIDs      [][]uuid.UUID `json:"booking_ids"`
}

// ChartData is a chart-ready payload: {type, labels, datasets}
type ChartData struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Labels     []string       `json:"labels"`
	Datasets   []ChartDataset `json:"datasets"`
	Generation uint64         `json:"generation"`
}

// ProductRanking is one row of the top selling products list
type ProductRanking struct {
	Number      int    `json:"number"`
	ProductName string `json:"product_name"`
	TotalSales  string `json:"total_sales"`
	SoldStock   int    `json:"sold_stock"`
}

// DomainTerm is one (field, operator, value) triple of a conjunctive
// record filter
type DomainTerm struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// ActionDescriptor describes a navigation request to a filtered list view
type ActionDescriptor struct {
	Name     string       `json:"name"`
	ResModel string       `json:"res_model"`
	ViewMode string       `json:"view_mode"`
	Domain   []DomainTerm `json:"domain"`
}
