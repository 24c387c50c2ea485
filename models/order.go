package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a pizza order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// Order is an active (not yet delivered) order. Customer contact fields are
// snapshotted at creation time so later profile edits never rewrite an
// order that already left the kitchen.
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	CustomerName    string          `json:"customer_name" gorm:"not null"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is one ordered pizza. Name and price are snapshots taken from
// the catalog at order time.
type OrderItem struct {
	ID      uint            `json:"id" gorm:"primaryKey"`
	OrderID uint            `json:"order_id" gorm:"not null;index"`
	Name    string          `json:"name" gorm:"not null"`
	Price   decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// OrderHistory is the immutable terminal snapshot of a delivered order.
// It is created only by the delivered-status migration, in the same
// transaction that deletes the active row.
type OrderHistory struct {
	ID              uint               `json:"id" gorm:"primaryKey"`
	OriginalOrderID uint               `json:"original_order_id" gorm:"uniqueIndex;not null"`
	UserID          uint               `json:"user_id" gorm:"not null;index"`
	CustomerName    string             `json:"customer_name" gorm:"not null"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	Items           []OrderHistoryItem `json:"items" gorm:"foreignKey:HistoryID"`
	Total           decimal.Decimal    `json:"total" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus        `json:"status" gorm:"not null"`
	CreatedAt       time.Time          `json:"created_at"` // preserved from the active order
	CompletedAt     time.Time          `json:"completed_at" gorm:"not null"`
}

// OrderStatusChange is the audit trail of an order's lifecycle: one row per
// transition, including the initial pending entry written at creation.
// Rows are keyed by the active order's id and survive its migration to
// history.
type OrderStatusChange struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status,omitempty"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	CreatedAt  time.Time   `json:"created_at"`
}

type OrderHistoryItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	HistoryID uint            `json:"history_id" gorm:"not null;index"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}
