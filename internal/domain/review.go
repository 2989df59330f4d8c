package domain

import "time"

// Review is optional and unique per purchased line item.
type Review struct {
	ID          uint64    `json:"reviewID" gorm:"primaryKey;autoIncrement"`
	OrderItemID uint64    `json:"orderItemID" gorm:"uniqueIndex;not null"`
	Comment     string    `json:"comment" gorm:"type:text"`
	Rating      int       `json:"rating" gorm:"not null;default:5"`
	CreatedAt   time.Time `json:"createdDate" gorm:"autoCreateTime"`
}
