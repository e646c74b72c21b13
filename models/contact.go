package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry classifications for inbound contact messages.
const (
	InquiryGeneral   = "general"
	InquiryBooking   = "booking"
	InquiryComplaint = "complaint"
	InquiryFeedback  = "feedback"
	InquiryOther     = "other"
)

const (
	ContactPriorityHigh   = "high"
	ContactPriorityNormal = "normal"
)

const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in-progress"
	ContactStatusResolved   = "resolved"
	ContactStatusClosed     = "closed"
)

func IsValidInquiryType(t string) bool {
	switch t {
	case InquiryGeneral, InquiryBooking, InquiryComplaint, InquiryFeedback, InquiryOther:
		return true
	}
	return false
}

func IsValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResolved, ContactStatusClosed:
		return true
	}
	return false
}

// PriorityForInquiry derives triage priority from the inquiry classification.
// Complaints and booking questions jump the queue.
func PriorityForInquiry(inquiryType string) string {
	switch inquiryType {
	case InquiryComplaint, InquiryBooking:
		return ContactPriorityHigh
	default:
		return ContactPriorityNormal
	}
}

type Contact struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"size:150" json:"name"`
	Email string `gorm:"size:150;index" json:"email"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`

	InquiryType string `gorm:"column:inquiry_type;size:50" json:"inquiryType"`
	Subject     string `gorm:"size:255" json:"subject"`
	Message     string `gorm:"type:text" json:"message"`

	Priority string `gorm:"size:20;index" json:"priority"`
	Status   string `gorm:"size:20;index" json:"status"`

	ResponseMessage string     `gorm:"column:response_message;type:text" json:"responseMessage,omitempty"`
	RespondedBy     string     `gorm:"column:responded_by;size:150" json:"respondedBy,omitempty"`
	RespondedAt     *time.Time `gorm:"column:responded_at" json:"respondedAt,omitempty"`
}
