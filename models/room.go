package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	// Nullable so rooms without a configured type can still be created.
	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	// Status is mutated only by the transition orchestrator (or an explicit
	// maintenance action routed through it).
	Status RoomStatus `json:"status" gorm:"column:status;size:32;default:available"`

	Floor        string  `json:"floor" gorm:"type:varchar(10)"`
	Price        float64 `json:"price"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string  `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}
