package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"petboard/internal/analytics"
	"petboard/internal/config"
	"petboard/internal/model"
	"petboard/internal/repository"

	"github.com/google/uuid"
)

// KpiService builds the three summary cards for a date window and resolves
// card clicks into navigation actions
type KpiService interface {
	GetKpis(ctx context.Context, start, end *time.Time) (model.KpiResponse, error)
	ClickAction(name string, start, end *time.Time) model.ActionDescriptor
}

type kpiService struct {
	bookings repository.BookingRepository
	lines    repository.ProductLineRepository
	loc      *time.Location
	format   analytics.Formatter
	nav      Navigator
}

func NewKpiService(bookings repository.BookingRepository, lines repository.ProductLineRepository, cfg *config.Config, nav Navigator) KpiService {
	return &kpiService{
		bookings: bookings,
		lines:    lines,
		loc:      analytics.BusinessZone(cfg.TimezoneOffsetHours),
		format: analytics.Formatter{
			CurrencyPrefix:     cfg.CurrencyPrefix,
			MillionSuffix:      cfg.MillionSuffix,
			ThousandSuffix:     cfg.ThousandSuffix,
			ThousandsSeparator: cfg.ThousandsSeparator,
		},
		nav: nav,
	}
}

// GetKpis fetches the bookings of [start, end] and of the preceding window
// of equal length, then reduces both sets into Revenue / Orders / Product
// Sold with percentage change. A nil start and end falls back to the
// current calendar month in the business timezone.
func (s *kpiService) GetKpis(ctx context.Context, start, end *time.Time) (model.KpiResponse, error) {
	curStart, curEnd := resolveWindow(start, end, s.loc)

	current, err := s.bookings.FindByDateRange(ctx, curStart, curEnd)
	if err != nil {
		return model.KpiResponse{}, fmt.Errorf("failed to fetch current period bookings: %w", err)
	}
	if err := s.attachProductLines(ctx, current); err != nil {
		return model.KpiResponse{}, err
	}

	prevStart, prevEnd := analytics.PreviousPeriod(curStart, curEnd)
	previous, err := s.bookings.FindByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return model.KpiResponse{}, fmt.Errorf("failed to fetch previous period bookings: %w", err)
	}
	if err := s.attachProductLines(ctx, previous); err != nil {
		return model.KpiResponse{}, err
	}

	return model.KpiResponse{
		Metrics:       analytics.ComputeKpis(current, previous, s.format),
		PeriodStart:   curStart,
		PeriodEnd:     curEnd,
		PreviousStart: prevStart,
		PreviousEnd:   prevEnd,
	}, nil
}

// ClickAction turns a KPI card click into a navigation request scoped to
// the card's date window. Navigation failures are logged and swallowed;
// a broken push channel must not break the dashboard.
func (s *kpiService) ClickAction(name string, start, end *time.Time) model.ActionDescriptor {
	curStart, curEnd := resolveWindow(start, end, s.loc)

	action := model.ActionDescriptor{
		Name:     name + " Detail",
		ResModel: "bookings",
		ViewMode: "list",
		Domain: []model.DomainTerm{
			{Field: "booking_date", Operator: ">=", Value: curStart.Format("2006-01-02")},
			{Field: "booking_date", Operator: "<=", Value: curEnd.Format("2006-01-02")},
		},
	}

	if s.nav != nil {
		if err := s.nav.Navigate(action); err != nil {
			log.Println("navigation dispatch failed:", err)
		}
	}
	return action
}

// attachProductLines loads the lines of every booking with one id-set
// lookup and assigns them to their parents
func (s *kpiService) attachProductLines(ctx context.Context, bookings []model.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	lines, err := s.lines.FindByBookingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch product lines: %w", err)
	}

	byBooking := make(map[uuid.UUID][]model.ProductLine, len(bookings))
	for _, line := range lines {
		byBooking[line.BookingID] = append(byBooking[line.BookingID], line)
	}
	for i := range bookings {
		bookings[i].ProductLines = byBooking[bookings[i].ID]
	}
	return nil
}

// resolveWindow falls back to the current calendar month in the business
// timezone when the caller supplies no dates
func resolveWindow(start, end *time.Time, loc *time.Location) (time.Time, time.Time) {
	if start != nil && end != nil {
		return *start, *end
	}
	return analytics.CurrentMonth(time.Now(), loc)
}
