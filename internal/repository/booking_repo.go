package repository

import (
	"context"
	"time"

	"petboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository reads booking records for the dashboard. The dashboard
// never writes bookings; the host application owns them.
type BookingRepository interface {
	FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Booking, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Booking, error)
	List(ctx context.Context, page, limit int, ids []uuid.UUID, start, end *time.Time) ([]model.Booking, int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// FindByDateRange returns bookings whose booking_date falls inside the
// closed interval [start, end]. Only the fields the dashboard aggregates
// are projected; product lines are fetched separately by booking id.
func (r *bookingRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "booking_code", "customer_name", "booking_date", "delivery_time", "total_price").
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Booking, error) {
	if len(ids) == 0 {
		return []model.Booking{}, nil
	}
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Preload("ProductLines").
		Where("id IN ?", ids).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// List serves the click-through detail view: paginated bookings filtered
// by an explicit id set, a date range, or both.
func (r *bookingRepository) List(ctx context.Context, page, limit int, ids []uuid.UUID, start, end *time.Time) ([]model.Booking, int64, error) {
	var bookings []model.Booking
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Booking{})
	if len(ids) > 0 {
		db = db.Where("id IN ?", ids)
	}
	if start != nil && end != nil {
		db = db.Where("booking_date >= ? AND booking_date <= ?", *start, *end)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.
		Preload("ProductLines").
		Order("booking_date DESC").
		Offset(offset).Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
