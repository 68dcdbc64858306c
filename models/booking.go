package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// A booking references exactly one room and one guest; both links are
	// immutable for the lifetime of the booking.
	RoomID  uint `gorm:"index;column:room_id" json:"room_id"`
	GuestID uint `gorm:"index;column:guest_id" json:"guest_id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code,omitempty"`

	// Status and PaymentStatus are mutated exclusively through
	// orchestrator-guarded transitions.
	Status        BookingStatus `gorm:"column:status;size:32" json:"status"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:32" json:"payment_status"`

	CheckIn    *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut   *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`
	Nights     int        `gorm:"column:nights" json:"nights,omitempty"`
	TotalPrice float64    `gorm:"column:total_price" json:"total_price"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	// Draft list of accompanying guests captured at creation time.
	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanyingGuests,omitempty"`

	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Guest Guest `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
}
