package service

import (
	"context"
	"sort"
	"time"

	"petboard/internal/config"
	"petboard/internal/model"

	"github.com/google/uuid"
)

// fakeBookingRepo serves bookings from memory and records every requested
// date range so tests can assert the resolved window
type fakeBookingRepo struct {
	bookings []model.Booking
	err      error
	ranges   [][2]time.Time
}

func (f *fakeBookingRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]model.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.ranges = append(f.ranges, [2]time.Time{start, end})

	var out []model.Booking
	for _, b := range f.bookings {
		if !b.BookingDate.Before(start) && !b.BookingDate.After(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Booking
	for _, b := range f.bookings {
		if want[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) List(_ context.Context, page, limit int, ids []uuid.UUID, start, end *time.Time) ([]model.Booking, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.bookings, int64(len(f.bookings)), nil
}

type fakeLineRepo struct {
	lines []model.ProductLine
	err   error
}

func (f *fakeLineRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]model.ProductLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.ProductLine
	for _, l := range f.lines {
		if l.BookingID == bookingID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLineRepo) FindByBookingIDs(_ context.Context, bookingIDs []uuid.UUID) ([]model.ProductLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[uuid.UUID]bool, len(bookingIDs))
	for _, id := range bookingIDs {
		want[id] = true
	}
	var out []model.ProductLine
	for _, l := range f.lines {
		if want[l.BookingID] {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLineRepo) FindAllOrdered(_ context.Context) ([]model.ProductLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.ProductLine, len(f.lines))
	copy(out, f.lines)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProductName < out[j].ProductName
	})
	return out, nil
}

type fakeNavigator struct {
	actions []model.ActionDescriptor
	err     error
}

func (f *fakeNavigator) Navigate(action model.ActionDescriptor) error {
	if f.err != nil {
		return f.err
	}
	f.actions = append(f.actions, action)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		TimezoneOffsetHours: 7,
		CurrencyPrefix:      "Rp ",
		MillionSuffix:       " jt",
		ThousandSuffix:      "rb",
		ThousandsSeparator:  ".",
		TopProductsLimit:    5,
	}
}
