package domain

import "time"

// Role is resolved once at login and carried on the session token. Handlers
// never probe for profile rows to decide what kind of user is calling.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

type Customer struct {
	ID               uint64    `json:"customerID" gorm:"primaryKey;autoIncrement"`
	UserID           uint64    `json:"-" gorm:"uniqueIndex;not null"`
	User             *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FirstName        string    `json:"firstName" gorm:"size:50;not null"`
	LastName         string    `json:"lastName" gorm:"size:50;not null"`
	PhoneNo          string    `json:"phoneNo" gorm:"size:20;not null"`
	ShippingAddress1 string    `json:"shippingAddress1" gorm:"type:text;not null"`
	ShippingAddress2 string    `json:"shippingAddress2" gorm:"type:text"`
	ShippingAddress3 string    `json:"shippingAddress3" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdTime" gorm:"autoCreateTime"`
}

// ShippingAddress returns the customer's default address, preferring the
// first non-empty slot.
func (c *Customer) ShippingAddress() string {
	for _, addr := range []string{c.ShippingAddress1, c.ShippingAddress2, c.ShippingAddress3} {
		if addr != "" {
			return addr
		}
	}
	return ""
}

type Vendor struct {
	ID              uint64    `json:"vendorID" gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `json:"-" gorm:"uniqueIndex;not null"`
	User            *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PhoneNo         string    `json:"phoneNo" gorm:"size:20;not null"`
	ProfileImageURL string    `json:"profileImage,omitempty" gorm:"size:500"`
	CreatedAt       time.Time `json:"createdTime" gorm:"autoCreateTime"`
}
