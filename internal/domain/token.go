package domain

import "time"

// AuthToken is an opaque bearer credential issued at registration or login.
// The role and profile id are resolved once when the token is issued, so
// request handling never has to probe which profile table a user appears in.
type AuthToken struct {
	ID        uint64    `json:"-" gorm:"primaryKey;autoIncrement"`
	Key       string    `json:"token" gorm:"size:64;uniqueIndex;not null"`
	UserID    uint64    `json:"-" gorm:"index;not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Role      Role      `json:"-" gorm:"size:20;not null"`
	ProfileID uint64    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}

// Session is the authenticated identity attached to a request context.
type Session struct {
	UserID    uint64 `json:"userID"`
	Role      Role   `json:"role"`
	ProfileID uint64 `json:"profileID"`
}
