package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-reservation-api/models"

	"gorm.io/gorm"
)

// ContactService handles the inbound inquiry inbox and admin triage.
type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// ContactInput is the inbound submission payload.
type ContactInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiryType" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

func (s *ContactService) Create(input ContactInput) (*models.Contact, error) {
	if !models.IsValidInquiryType(input.InquiryType) {
		return nil, fmt.Errorf("validation: unknown inquiry type %q", input.InquiryType)
	}

	contact := models.Contact{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
		InquiryType: input.InquiryType,
		Subject:     strings.TrimSpace(input.Subject),
		Message:     strings.TrimSpace(input.Message),
		Priority:    models.PriorityForInquiry(input.InquiryType),
		Status:      models.ContactStatusNew,
	}
	if err := s.DB.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

func (s *ContactService) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.DB.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to load contact %d: %w", id, err)
	}
	return &contact, nil
}

// ContactFilters narrows List results.
type ContactFilters struct {
	Status   string
	Priority string
}

func (s *ContactService) List(filters ContactFilters) ([]models.Contact, error) {
	q := s.DB.Order("created_at DESC")
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.Priority != "" {
		q = q.Where("priority = ?", filters.Priority)
	}

	var list []models.Contact
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return list, nil
}

func (s *ContactService) UpdateStatus(id uint, status string) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}
	contact, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(contact).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact %d: %w", id, err)
	}
	contact.Status = status
	return contact, nil
}

// Respond records the admin response and moves a fresh inquiry into
// in-progress; already-triaged statuses are left alone.
func (s *ContactService) Respond(id uint, message, respondedBy string) (*models.Contact, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("validation: response message is required")
	}
	contact, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"response_message": message,
		"responded_by":     strings.TrimSpace(respondedBy),
		"responded_at":     now,
	}
	if contact.Status == models.ContactStatusNew {
		updates["status"] = models.ContactStatusInProgress
	}

	if err := s.DB.Model(contact).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to record response for contact %d: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *ContactService) Delete(id uint) error {
	result := s.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// PurgeClosed hard-deletes closed contacts older than the cutoff. Used by
// the periodic cleanup worker; idempotent.
func (s *ContactService) PurgeClosed(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	result := s.DB.Unscoped().
		Where("status = ?", models.ContactStatusClosed).
		Where("updated_at < ?", cutoff).
		Delete(&models.Contact{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge closed contacts: %w", result.Error)
	}
	return result.RowsAffected, nil
}
