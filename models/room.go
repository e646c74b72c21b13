package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room types supported by the catalog.
const (
	RoomTypeSingle       = "single"
	RoomTypeDouble       = "double"
	RoomTypeSuite        = "suite"
	RoomTypeDeluxe       = "deluxe"
	RoomTypePresidential = "presidential"
)

var RoomTypes = []string{
	RoomTypeSingle,
	RoomTypeDouble,
	RoomTypeSuite,
	RoomTypeDeluxe,
	RoomTypePresidential,
}

func IsValidRoomType(t string) bool {
	for _, v := range RoomTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Room struct {
	gorm.Model

	RoomNumber   string         `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Name         string         `json:"name" gorm:"size:150"`
	Type         string         `json:"type" gorm:"size:50;index"`
	Price        float64        `json:"price"`
	MaxOccupancy int            `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Amenities    datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
	IsAvailable  bool           `json:"isAvailable" gorm:"column:is_available;default:true"`
	Description  string         `json:"description" gorm:"type:text"`
}
