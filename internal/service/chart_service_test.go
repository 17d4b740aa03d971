package service

import (
	"context"
	"testing"
	"time"

	"petboard/internal/analytics"
	"petboard/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chartFixture: two January bookings, three product lines.
//
//	booking1 (Jan 5):  Vitamin x2 @60, Shampoo x1 @40   -> total 100
//	booking2 (Jan 20): Vitamin x3 @50                    -> total 50
func chartFixture() (*fakeBookingRepo, *fakeLineRepo, uuid.UUID, uuid.UUID) {
	loc := analytics.BusinessZone(7)
	b1 := uuid.New()
	b2 := uuid.New()

	bookings := &fakeBookingRepo{bookings: []model.Booking{
		{
			ID:           b1,
			BookingDate:  time.Date(2024, 1, 5, 0, 0, 0, 0, loc),
			DeliveryTime: time.Date(2024, 1, 5, 10, 0, 0, 0, loc),
			TotalPrice:   decimal.NewFromInt(100),
		},
		{
			ID:           b2,
			BookingDate:  time.Date(2024, 1, 20, 0, 0, 0, 0, loc),
			DeliveryTime: time.Date(2024, 1, 20, 14, 0, 0, 0, loc),
			TotalPrice:   decimal.NewFromInt(50),
		},
	}}

	lines := &fakeLineRepo{lines: []model.ProductLine{
		{BookingID: b1, ProductName: "Vitamin", QuantitySelected: 2, TotalPrice: decimal.NewFromInt(60)},
		{BookingID: b1, ProductName: "Shampoo", QuantitySelected: 1, TotalPrice: decimal.NewFromInt(40)},
		{BookingID: b2, ProductName: "Vitamin", QuantitySelected: 3, TotalPrice: decimal.NewFromInt(50)},
	}}

	return bookings, lines, b1, b2
}

func TestGetChartLine(t *testing.T) {
	bookings, lines, b1, b2 := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	start, end := janWindow(t)
	data, err := svc.GetChart(context.Background(), ChartLine, start, end)
	require.NoError(t, err)

	assert.Equal(t, ChartLine, data.Type)
	assert.Equal(t, []string{"2024-01-05", "2024-01-20"}, data.Labels)
	require.Len(t, data.Datasets, 1)

	ds := data.Datasets[0]
	assert.Equal(t, "Total Revenue", ds.Label)
	assert.Equal(t, []float64{100, 50}, ds.Data)
	assert.Equal(t, [][]uuid.UUID{{b1}, {b2}}, ds.BookingIDs)
	assert.Equal(t, 3, ds.BorderWidth)
}

func TestGetChartBarSortsDescending(t *testing.T) {
	bookings, lines, b1, b2 := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	start, end := janWindow(t)
	data, err := svc.GetChart(context.Background(), ChartBar, start, end)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vitamin", "Shampoo"}, data.Labels)
	ds := data.Datasets[0]
	assert.Equal(t, "Total Price", ds.Label)
	assert.Equal(t, []float64{110, 40}, ds.Data)

	// The id sets travel with their groups through the sort
	assert.ElementsMatch(t, []uuid.UUID{b1, b2}, ds.BookingIDs[0])
	assert.Equal(t, []uuid.UUID{b1}, ds.BookingIDs[1])
}

func TestGetChartDoughnutSumsQuantities(t *testing.T) {
	bookings, lines, _, _ := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	start, end := janWindow(t)
	data, err := svc.GetChart(context.Background(), ChartDoughnut, start, end)
	require.NoError(t, err)

	ds := data.Datasets[0]
	assert.Equal(t, "Kuantitas", ds.Label)

	byLabel := make(map[string]float64)
	for i, label := range data.Labels {
		byLabel[label] = ds.Data[i]
	}
	assert.Equal(t, 5.0, byLabel["Vitamin"])
	assert.Equal(t, 1.0, byLabel["Shampoo"])
}

func TestGetChartColorsAreDeterministic(t *testing.T) {
	bookings, lines, _, _ := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	start, end := janWindow(t)
	first, err := svc.GetChart(context.Background(), ChartBar, start, end)
	require.NoError(t, err)
	second, err := svc.GetChart(context.Background(), ChartBar, start, end)
	require.NoError(t, err)

	assert.Equal(t, first.Datasets[0].BackgroundColor, second.Datasets[0].BackgroundColor)
	assert.Equal(t, "rgba(255, 102, 102, 0.7)", first.Datasets[0].BackgroundColor[0])
	assert.Equal(t, first.Datasets[0].BackgroundColor, first.Datasets[0].BorderColor)
}

func TestGetChartUnknownKind(t *testing.T) {
	bookings, lines, _, _ := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	_, err := svc.GetChart(context.Background(), "radar", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownChartKind)
}

func TestGetChartEmptyWindow(t *testing.T) {
	bookings, lines, _, _ := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	loc := analytics.BusinessZone(7)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, loc)
	end := time.Date(2020, 1, 31, 0, 0, 0, 0, loc)
	data, err := svc.GetChart(context.Background(), ChartLine, &start, &end)
	require.NoError(t, err)
	assert.Empty(t, data.Labels)
	assert.Empty(t, data.Datasets[0].Data)
}

func TestResolveClick(t *testing.T) {
	bookings, lines, b1, b2 := chartFixture()
	nav := &fakeNavigator{}
	svc := NewChartService(bookings, lines, testConfig(), nav)

	start, end := janWindow(t)
	_, err := svc.GetChart(context.Background(), ChartBar, start, end)
	require.NoError(t, err)

	action, err := svc.ResolveClick(ChartBar, 0)
	require.NoError(t, err)

	assert.Equal(t, "Booking List", action.Name)
	assert.Equal(t, "bookings", action.ResModel)
	require.Len(t, action.Domain, 1)
	assert.Equal(t, "id", action.Domain[0].Field)
	assert.Equal(t, "in", action.Domain[0].Operator)
	assert.ElementsMatch(t, []uuid.UUID{b1, b2}, action.Domain[0].Value.([]uuid.UUID))

	require.Len(t, nav.actions, 1)
}

func TestResolveClickWithoutSnapshot(t *testing.T) {
	svc := NewChartService(&fakeBookingRepo{}, &fakeLineRepo{}, testConfig(), nil)

	_, err := svc.ResolveClick(ChartBar, 0)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestResolveClickOutOfRange(t *testing.T) {
	bookings, lines, _, _ := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	start, end := janWindow(t)
	_, err := svc.GetChart(context.Background(), ChartBar, start, end)
	require.NoError(t, err)

	_, err = svc.ResolveClick(ChartBar, 99)
	assert.ErrorIs(t, err, ErrPointOutOfRange)
}

func TestStaleBuildNeverOverwritesNewerSnapshot(t *testing.T) {
	svc := NewChartService(&fakeBookingRepo{}, &fakeLineRepo{}, testConfig(), nil).(*chartService)

	newer := [][]uuid.UUID{{uuid.New()}}
	svc.storeSnapshot(ChartBar, 2, []string{"fresh"}, newer)
	svc.storeSnapshot(ChartBar, 1, []string{"stale"}, [][]uuid.UUID{{uuid.New()}})

	svc.mu.Lock()
	snap := svc.snapshots[ChartBar]
	svc.mu.Unlock()

	assert.Equal(t, uint64(2), snap.generation)
	assert.Equal(t, []string{"fresh"}, snap.labels)
	assert.Equal(t, newer, snap.bookingIDs)
}

func TestGetChartGenerationIncreases(t *testing.T) {
	bookings, lines, _, _ := chartFixture()
	svc := NewChartService(bookings, lines, testConfig(), nil)

	first, err := svc.GetChart(context.Background(), ChartLine, nil, nil)
	require.NoError(t, err)
	second, err := svc.GetChart(context.Background(), ChartLine, nil, nil)
	require.NoError(t, err)

	assert.Greater(t, second.Generation, first.Generation)
}
