package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pizza is a catalog entry. Slug is the stable identifier the frontend
// submits ("quatro-queijos"); Name is the display name ("Quatro Queijos").
type Pizza struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	Slug      string          `json:"id" gorm:"uniqueIndex;not null"`
	Name      string          `json:"name" gorm:"uniqueIndex;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}
