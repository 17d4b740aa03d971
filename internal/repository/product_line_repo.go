package repository

import (
	"context"

	"petboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductLineRepository reads product lines by explicit parent lookup.
// Lines are never joined eagerly with bookings; callers fetch them after
// the parent set is known.
type ProductLineRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]model.ProductLine, error)
	FindByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) ([]model.ProductLine, error)
	FindAllOrdered(ctx context.Context) ([]model.ProductLine, error)
}

type productLineRepository struct {
	db *gorm.DB
}

func NewProductLineRepository(db *gorm.DB) ProductLineRepository {
	return &productLineRepository{db: db}
}

func (r *productLineRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]model.ProductLine, error) {
	var lines []model.ProductLine
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *productLineRepository) FindByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) ([]model.ProductLine, error) {
	if len(bookingIDs) == 0 {
		return []model.ProductLine{}, nil
	}
	var lines []model.ProductLine
	if err := r.db.WithContext(ctx).
		Where("booking_id IN ?", bookingIDs).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindAllOrdered returns every product line sorted by product name, the
// fetch order the top-products ranking starts from.
func (r *productLineRepository) FindAllOrdered(ctx context.Context) ([]model.ProductLine, error) {
	var lines []model.ProductLine
	if err := r.db.WithContext(ctx).
		Order("product_name ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
