package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle statuses.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
	BookingStatusNoShow     = "no-show"
)

// Payment statuses for the embedded payment sub-record.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Accepted payment methods.
const (
	PaymentMethodCard     = "card"
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "bank-transfer"
)

// Refund bookkeeping states on a cancellation record.
const (
	RefundStatusPending       = "pending"
	RefundStatusNotApplicable = "not_applicable"
)

func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodTransfer:
		return true
	}
	return false
}

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode      string  `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`
	ConfirmationNumber *string `gorm:"column:confirmation_number;uniqueIndex;size:64" json:"confirmationNumber,omitempty"`

	RoomID uint `gorm:"index;column:room_id" json:"roomId"`
	Room   Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	GuestName    string `gorm:"size:150" json:"guestName"`
	GuestEmail   string `gorm:"size:150;index" json:"guestEmail"`
	GuestPhone   string `gorm:"size:50" json:"guestPhone"`
	GuestAddress string `gorm:"size:255" json:"guestAddress"`

	// Half-open range: the room is occupied on [CheckIn, CheckOut).
	CheckIn        time.Time `gorm:"column:check_in;index" json:"checkIn"`
	CheckOut       time.Time `gorm:"column:check_out;index" json:"checkOut"`
	Nights         int       `json:"nights"`
	NumberOfGuests int       `gorm:"column:number_of_guests" json:"numberOfGuests"`

	NightlyRate float64 `gorm:"column:nightly_rate" json:"nightlyRate"`
	Subtotal    float64 `json:"subtotal"`
	Taxes       float64 `json:"taxes"`
	ServiceFee  float64 `gorm:"column:service_fee" json:"serviceFee"`
	Total       float64 `json:"total"`

	PaymentMethod string `gorm:"column:payment_method;size:50" json:"paymentMethod"`
	PaymentStatus string `gorm:"column:payment_status;size:50;index" json:"paymentStatus"`
	TransactionID string `gorm:"column:transaction_id;size:128" json:"transactionId,omitempty"`

	Status       string     `gorm:"size:50;index" json:"status"`
	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`

	CancelledAt        *time.Time `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`
	CancellationReason string     `gorm:"column:cancellation_reason;size:255" json:"cancellationReason,omitempty"`
	RefundAmount       float64    `gorm:"column:refund_amount" json:"refundAmount,omitempty"`
	RefundStatus       string     `gorm:"column:refund_status;size:50" json:"refundStatus,omitempty"`
}
