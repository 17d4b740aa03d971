package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"petboard/internal/analytics"
	"petboard/internal/config"
	"petboard/internal/model"
	"petboard/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Chart kinds the renderer understands
const (
	ChartBar      = "bar"
	ChartDoughnut = "doughnut"
	ChartLine     = "line"
)

// Concurrent product-line fetches per chart build
const lineFetchConcurrency = 8

var (
	ErrUnknownChartKind = errors.New("unknown chart kind")
	ErrNoSnapshot       = errors.New("no chart snapshot available")
	ErrPointOutOfRange  = errors.New("chart point index out of range")
)

// ChartService builds chart-ready payloads and resolves clicks on rendered
// points back to the booking ids behind them
type ChartService interface {
	GetChart(ctx context.Context, kind string, start, end *time.Time) (model.ChartData, error)
	ResolveClick(kind string, index int) (model.ActionDescriptor, error)
}

// chartSnapshot retains the group→booking-id mapping of the most recent
// build per chart kind so a later click resolves against what was rendered,
// not against re-derived labels
type chartSnapshot struct {
	generation uint64
	labels     []string
	bookingIDs [][]uuid.UUID
}

type chartService struct {
	bookings repository.BookingRepository
	lines    repository.ProductLineRepository
	loc      *time.Location
	nav      Navigator

	gen       atomic.Uint64
	mu        sync.Mutex
	snapshots map[string]chartSnapshot
}

func NewChartService(bookings repository.BookingRepository, lines repository.ProductLineRepository, cfg *config.Config, nav Navigator) ChartService {
	return &chartService{
		bookings:  bookings,
		lines:     lines,
		loc:       analytics.BusinessZone(cfg.TimezoneOffsetHours),
		nav:       nav,
		snapshots: make(map[string]chartSnapshot),
	}
}

// GetChart runs the full fetch-aggregate-color pipeline for one chart kind.
// Line charts group revenue by delivery date, bar charts group revenue by
// product (sorted descending), doughnut charts group sold quantity by
// product. The result replaces the retained snapshot only if no newer
// build finished in the meantime.
func (s *chartService) GetChart(ctx context.Context, kind string, start, end *time.Time) (model.ChartData, error) {
	if kind != ChartBar && kind != ChartDoughnut && kind != ChartLine {
		return model.ChartData{}, fmt.Errorf("%w: %q", ErrUnknownChartKind, kind)
	}

	// Stamped before fetching so a slow stale run can never win over a
	// build that started after it
	gen := s.gen.Add(1)

	curStart, curEnd := resolveWindow(start, end, s.loc)
	bookings, err := s.bookings.FindByDateRange(ctx, curStart, curEnd)
	if err != nil {
		return model.ChartData{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	records, err := s.loadSaleRecords(ctx, bookings)
	if err != nil {
		return model.ChartData{}, err
	}

	groups := analytics.Aggregate(records, s.keyFunc(kind), measureFunc(kind))
	if kind == ChartBar {
		groups = analytics.TopN(groups, 0)
	}

	data := buildChartData(kind, groups, gen)
	s.storeSnapshot(kind, gen, data.Labels, data.Datasets[0].BookingIDs)
	return data, nil
}

// ResolveClick maps a rendered point index back to the stored booking-id
// set and dispatches a navigation request scoped to those bookings
func (s *chartService) ResolveClick(kind string, index int) (model.ActionDescriptor, error) {
	s.mu.Lock()
	snap, ok := s.snapshots[kind]
	s.mu.Unlock()

	if !ok {
		return model.ActionDescriptor{}, fmt.Errorf("%w for kind %q", ErrNoSnapshot, kind)
	}
	if index < 0 || index >= len(snap.bookingIDs) {
		return model.ActionDescriptor{}, fmt.Errorf("%w: %d of %d", ErrPointOutOfRange, index, len(snap.bookingIDs))
	}

	action := model.ActionDescriptor{
		Name:     "Booking List",
		ResModel: "bookings",
		ViewMode: "list",
		Domain: []model.DomainTerm{
			{Field: "id", Operator: "in", Value: snap.bookingIDs[index]},
		},
	}

	if s.nav != nil {
		if err := s.nav.Navigate(action); err != nil {
			log.Println("navigation dispatch failed:", err)
		}
	}
	return action, nil
}

// loadSaleRecords fetches the product lines of every booking concurrently
// and joins them into flat sale records before aggregation proceeds
func (s *chartService) loadSaleRecords(ctx context.Context, bookings []model.Booking) ([]analytics.SaleRecord, error) {
	perBooking := make([][]analytics.SaleRecord, len(bookings))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lineFetchConcurrency)
	for i, b := range bookings {
		g.Go(func() error {
			lines, err := s.lines.FindByBookingID(ctx, b.ID)
			if err != nil {
				return fmt.Errorf("failed to fetch product lines for booking %s: %w", b.ID, err)
			}
			records := make([]analytics.SaleRecord, 0, len(lines))
			for _, line := range lines {
				records = append(records, analytics.SaleRecord{
					BookingID:        b.ID,
					DeliveryTime:     b.DeliveryTime,
					ProductName:      line.ProductName,
					Quantity:         line.Quantity,
					QuantitySelected: line.QuantitySelected,
					LineTotal:        line.TotalPrice.InexactFloat64(),
				})
			}
			perBooking[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []analytics.SaleRecord
	for _, recs := range perBooking {
		records = append(records, recs...)
	}
	return records, nil
}

func (s *chartService) keyFunc(kind string) analytics.KeyFunc {
	if kind == ChartLine {
		return analytics.ByDeliveryDate(s.loc)
	}
	return analytics.ByProductName
}

func measureFunc(kind string) analytics.MeasureFunc {
	if kind == ChartDoughnut {
		return analytics.MeasureQuantitySelected
	}
	return analytics.MeasureLineTotal
}

func buildChartData(kind string, groups []analytics.Group, gen uint64) model.ChartData {
	labels := make([]string, 0, len(groups))
	data := make([]float64, 0, len(groups))
	colors := make([]string, 0, len(groups))
	idSets := make([][]uuid.UUID, 0, len(groups))

	for i, g := range groups {
		labels = append(labels, g.Key)
		data = append(data, g.Total)
		colors = append(colors, analytics.ColorFor(i, len(groups)).String())
		idSets = append(idSets, g.BookingIDs)
	}

	return model.ChartData{
		Type:   kind,
		Title:  chartTitle(kind),
		Labels: labels,
		Datasets: []model.ChartDataset{{
			Label:           datasetLabel(kind),
			Data:            data,
			BackgroundColor: colors,
			BorderColor:     colors,
			BorderWidth:     3,
			BookingIDs:      idSets,
		}},
		Generation: gen,
	}
}

func (s *chartService) storeSnapshot(kind string, gen uint64, labels []string, ids [][]uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.snapshots[kind]; ok && existing.generation > gen {
		log.Printf("discarding stale %s chart build (generation %d, have %d)", kind, gen, existing.generation)
		return
	}
	s.snapshots[kind] = chartSnapshot{generation: gen, labels: labels, bookingIDs: ids}
}

func datasetLabel(kind string) string {
	switch kind {
	case ChartDoughnut:
		return "Kuantitas"
	case ChartBar:
		return "Total Price"
	default:
		return "Total Revenue"
	}
}

func chartTitle(kind string) string {
	switch kind {
	case ChartDoughnut:
		return "Product Quantity"
	case ChartBar:
		return "Product Revenue"
	default:
		return "Daily Revenue"
	}
}
