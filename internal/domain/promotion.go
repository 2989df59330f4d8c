package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PromotionStatus string

const (
	PromotionActive   PromotionStatus = "Active"
	PromotionInactive PromotionStatus = "Inactive"
)

type Promotion struct {
	ID           uint64          `json:"promotionID" gorm:"primaryKey;autoIncrement"`
	ProductID    uint64          `json:"productID" gorm:"index;not null"`
	DiscountRate decimal.Decimal `json:"discountRate" gorm:"type:decimal(5,2);not null"`
	StartDate    time.Time       `json:"startDate" gorm:"not null"`
	EndDate      time.Time       `json:"endDate" gorm:"not null"`
	Status       PromotionStatus `json:"status" gorm:"type:enum('Active','Inactive');default:'Inactive'"`
	CreatedAt    time.Time       `json:"createdTime" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updatedTime" gorm:"autoUpdateTime"`
}

// ActiveAt reports whether the promotion applies at the given instant: the
// status flag must be Active and the instant must fall inside the window.
func (p *Promotion) ActiveAt(now time.Time) bool {
	return p.Status == PromotionActive && !now.Before(p.StartDate) && !now.After(p.EndDate)
}
