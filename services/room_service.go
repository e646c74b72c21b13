package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hotel-reservation-api/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomService handles the room catalog CRUD.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomInput is the validated payload for create/update.
type RoomInput struct {
	RoomNumber   string   `json:"roomNumber" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	MaxOccupancy int      `json:"maxOccupancy" binding:"required,min=1,max=10"`
	Amenities    []string `json:"amenities"`
	IsAvailable  *bool    `json:"isAvailable"`
	Description  string   `json:"description"`
}

func (in *RoomInput) validate() error {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" {
		return fmt.Errorf("validation: room number is required")
	}
	if !models.IsValidRoomType(in.Type) {
		return fmt.Errorf("validation: unknown room type %q", in.Type)
	}
	return nil
}

func amenitiesJSON(amenities []string) (datatypes.JSON, error) {
	if amenities == nil {
		amenities = []string{}
	}
	raw, err := json.Marshal(amenities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode amenities: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func (s *RoomService) Create(input RoomInput) (*models.Room, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	amenities, err := amenitiesJSON(input.Amenities)
	if err != nil {
		return nil, err
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	room := models.Room{
		RoomNumber:   input.RoomNumber,
		Name:         strings.TrimSpace(input.Name),
		Type:         input.Type,
		Price:        input.Price,
		MaxOccupancy: input.MaxOccupancy,
		Amenities:    amenities,
		IsAvailable:  available,
		Description:  strings.TrimSpace(input.Description),
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// RoomFilters narrows List results.
type RoomFilters struct {
	Type      string
	Available *bool
}

func (s *RoomService) List(filters RoomFilters) ([]models.Room, error) {
	q := s.DB.Order("room_number ASC")
	if filters.Type != "" {
		q = q.Where("type = ?", filters.Type)
	}
	if filters.Available != nil {
		q = q.Where("is_available = ?", *filters.Available)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Update(id uint, input RoomInput) (*models.Room, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	amenities, err := amenitiesJSON(input.Amenities)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"room_number":   input.RoomNumber,
		"name":          strings.TrimSpace(input.Name),
		"type":          input.Type,
		"price":         input.Price,
		"max_occupancy": input.MaxOccupancy,
		"amenities":     amenities,
		"description":   strings.TrimSpace(input.Description),
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return s.GetByID(id)
}

// Delete soft-deletes a room, refused while any holding booking still
// references it.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", id, err)
		}

		var active int64
		err := tx.Model(&models.Booking{}).
			Where("room_id = ?", id).
			Where("status IN ?", conflictStatuses).
			Count(&active).Error
		if err != nil {
			return fmt.Errorf("failed to count active bookings: %w", err)
		}
		if active > 0 {
			return ErrRoomHasBookings
		}

		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", id, err)
		}
		return nil
	})
}
