package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingState constants
const (
	BookingStateCancel  = "CANCEL"
	BookingStateBooking = "BOOKING"
	BookingStateNotPaid = "NOT_PAID"
	BookingStatePaid    = "PAID"
)

// Product represents a sellable clinic item
type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SKU          string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	CurrentStock int             `gorm:"type:int;default:0;not null" json:"current_stock"`
	SalesPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"sales_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Booking represents a customer visit with its product lines.
// The dashboard treats bookings as read-only source records.
type Booking struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingCode  string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"booking_code"`
	CustomerName string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	BookingDate  time.Time       `gorm:"type:date;not null;index" json:"booking_date"`
	DeliveryTime time.Time       `gorm:"not null;index" json:"delivery_time"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_price"`
	State        string          `gorm:"type:varchar(20);default:'BOOKING'" json:"state"`
	ProductLines []ProductLine   `gorm:"foreignKey:BookingID" json:"product_lines"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductLine represents a product sold within a Booking
type ProductLine struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product          Product         `gorm:"foreignKey:ProductID" json:"-"`
	ProductName      string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity         int             `gorm:"type:int;not null;default:0" json:"quantity"`
	QuantitySelected int             `gorm:"type:int;not null;default:0" json:"quantity_selected"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_price"`
}
