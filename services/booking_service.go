// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-reservation-api/models"
	"hotel-reservation-api/realtime"
	"hotel-reservation-api/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Statuses that hold a room for their date range. Cancelled and no-show
// bookings release the room; checked-out stays are historical.
var conflictStatuses = []string{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
	models.BookingStatusCheckedIn,
}

// BookingService wraps *gorm.DB with the booking engine: creation with
// overlap checking, pricing, the status lifecycle and payment updates.
// The notification relay is an injected dependency, never a global.
type BookingService struct {
	DB      *gorm.DB
	Relay   *realtime.Hub
	Pricing PricingConfig
}

func NewBookingService(db *gorm.DB, relay *realtime.Hub, pricing PricingConfig) *BookingService {
	return &BookingService{DB: db, Relay: relay, Pricing: pricing}
}

// CreateBookingInput is the validated request for a new reservation.
type CreateBookingInput struct {
	RoomID         uint
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	GuestAddress   string
	PaymentMethod  string
}

func isDuplicateKeyErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

// CreateBooking validates the request, checks for conflicting reservations
// and persists the booking as pending. The room row is locked FOR UPDATE for
// the duration of the check-and-insert so two concurrent requests for the
// same room serialize; the loser sees the winner's row and gets
// ErrRoomNotAvailable instead of a silent double booking.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	checkIn := NormalizeDate(input.CheckIn)
	checkOut := NormalizeDate(input.CheckOut)
	today := NormalizeDate(time.Now().UTC())

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	if checkIn.Before(today) {
		return nil, ErrInvalidDateRange
	}
	if input.NumberOfGuests <= 0 {
		return nil, ErrOccupancyExceeded
	}

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error loading room %d: %w", input.RoomID, err)
		}

		if !room.IsAvailable {
			return ErrRoomUnavailable
		}
		if input.NumberOfGuests > room.MaxOccupancy {
			return ErrOccupancyExceeded
		}

		conflicts, err := countConflicts(tx, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrRoomNotAvailable
		}

		pricing := CalculatePricing(room.Price, CalculateNights(checkIn, checkOut), s.Pricing)

		// Retry on the negligible chance of a reference collision; the
		// unique index is the backstop.
		maxRetries := 5
		var createErr error
		for attempt := 0; attempt < maxRetries; attempt++ {
			ref, gErr := utils.GenerateBookingReference()
			if gErr != nil {
				return fmt.Errorf("failed to generate booking reference: %w", gErr)
			}

			booking := models.Booking{
				ReferenceCode:  ref,
				RoomID:         room.ID,
				GuestName:      strings.TrimSpace(input.GuestName),
				GuestEmail:     strings.TrimSpace(input.GuestEmail),
				GuestPhone:     strings.TrimSpace(input.GuestPhone),
				GuestAddress:   strings.TrimSpace(input.GuestAddress),
				CheckIn:        checkIn,
				CheckOut:       checkOut,
				Nights:         pricing.Nights,
				NumberOfGuests: input.NumberOfGuests,
				NightlyRate:    room.Price,
				Subtotal:       pricing.Subtotal,
				Taxes:          pricing.Taxes,
				ServiceFee:     pricing.ServiceFee,
				Total:          pricing.Total,
				PaymentMethod:  input.PaymentMethod,
				PaymentStatus:  models.PaymentStatusPending,
				Status:         models.BookingStatusPending,
			}

			createErr = tx.Create(&booking).Error
			if createErr == nil {
				bookingID = booking.ID
				return nil
			}
			if isDuplicateKeyErr(createErr) {
				log.Printf("booking reference collision (attempt %d) - retrying", attempt+1)
				continue
			}
			return fmt.Errorf("failed to create booking: %w", createErr)
		}
		return fmt.Errorf("failed to create booking after retries: %w", createErr)
	})
	if txErr != nil {
		return nil, txErr
	}

	var result models.Booking
	if err := s.DB.Preload("Room").First(&result, bookingID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}

	s.notify(realtime.EventNewBooking, &result)
	s.sendConfirmationEmail(&result)

	return &result, nil
}

// overlapsRange is the half-open intersection test for stay windows: two
// [checkIn, checkOut) ranges collide iff each starts before the other ends.
// Back-to-back stays sharing a turnover date do not overlap.
func overlapsRange(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// countConflicts loads the room's holding bookings and counts those whose
// window intersects [checkIn, checkOut) per overlapsRange.
func countConflicts(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	q := tx.Model(&models.Booking{}).
		Select("id", "check_in", "check_out").
		Where("room_id = ?", roomID).
		Where("status IN ?", conflictStatuses)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var holds []models.Booking
	if err := q.Find(&holds).Error; err != nil {
		return 0, fmt.Errorf("failed to check conflicting bookings: %w", err)
	}

	var count int64
	for _, b := range holds {
		if overlapsRange(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			count++
		}
	}
	return count, nil
}

// IsRoomAvailable reports whether the room's availability flag is on and no
// holding booking intersects [checkIn, checkOut). excludeBookingID skips one
// booking, for re-checks while updating that same booking.
func (s *BookingService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)
	if !checkOut.After(checkIn) {
		return false, ErrInvalidDateRange
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRoomNotFound
		}
		return false, fmt.Errorf("db error loading room %d: %w", roomID, err)
	}
	if !room.IsAvailable {
		return false, nil
	}

	conflicts, err := countConflicts(s.DB, roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return conflicts == 0, nil
}

// UpdateStatus moves a booking through its lifecycle. Check-in/check-out
// timestamps are stamped exactly once; the confirmation number is assigned
// on the first transition into confirmed.
func (s *BookingService) UpdateStatus(referenceCode, newStatus string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var updated models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := lockBookingByReference(tx, referenceCode)
		if err != nil {
			return err
		}

		if !CanTransition(booking.Status, newStatus) {
			return ErrInvalidTransition
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{"status": newStatus}

		switch newStatus {
		case models.BookingStatusConfirmed:
			if booking.ConfirmationNumber == nil {
				conf, cErr := utils.GenerateConfirmationNumber()
				if cErr != nil {
					return fmt.Errorf("failed to generate confirmation number: %w", cErr)
				}
				updates["confirmation_number"] = conf
			}
		case models.BookingStatusCheckedIn:
			if booking.CheckedInAt == nil {
				updates["checked_in_at"] = now
			}
		case models.BookingStatusCheckedOut:
			if booking.CheckedOutAt == nil {
				updates["checked_out_at"] = now
			}
		}

		if err := tx.Model(booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		return tx.Preload("Room").First(&updated, booking.ID).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notify(realtime.EventBookingUpdated, &updated)
	return &updated, nil
}

// UpdatePayment updates the payment sub-record. A completed payment on a
// still-pending booking auto-promotes it to confirmed.
func (s *BookingService) UpdatePayment(referenceCode, paymentStatus, transactionID string) (*models.Booking, error) {
	if !models.IsValidPaymentStatus(paymentStatus) {
		return nil, ErrInvalidPayment
	}

	var updated models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := lockBookingByReference(tx, referenceCode)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"payment_status": paymentStatus}
		if strings.TrimSpace(transactionID) != "" {
			updates["transaction_id"] = strings.TrimSpace(transactionID)
		}

		if paymentAutoConfirms(paymentStatus, booking.Status) {
			updates["status"] = models.BookingStatusConfirmed
			if booking.ConfirmationNumber == nil {
				conf, cErr := utils.GenerateConfirmationNumber()
				if cErr != nil {
					return fmt.Errorf("failed to generate confirmation number: %w", cErr)
				}
				updates["confirmation_number"] = conf
			}
		}

		if err := tx.Model(booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
		return tx.Preload("Room").First(&updated, booking.ID).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notify(realtime.EventBookingUpdated, &updated)
	return &updated, nil
}

// Cancel sets the booking to cancelled and records the cancellation
// sub-record. Refund status derives from the amount: pending when > 0,
// otherwise not_applicable. The amount is caller-supplied; no time-based
// refund formula is applied, only a 0..total bound.
func (s *BookingService) Cancel(referenceCode, reason string, refundAmount float64) (*models.Booking, error) {
	var updated models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := lockBookingByReference(tx, referenceCode)
		if err != nil {
			return err
		}

		if err := cancelGuard(booking.Status); err != nil {
			return err
		}

		if refundAmount < 0 || refundAmount > booking.Total {
			return ErrInvalidRefund
		}

		refundStatus := models.RefundStatusNotApplicable
		if refundAmount > 0 {
			refundStatus = models.RefundStatusPending
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{
			"status":              models.BookingStatusCancelled,
			"cancelled_at":        now,
			"cancellation_reason": strings.TrimSpace(reason),
			"refund_amount":       RoundToCents(refundAmount),
			"refund_status":       refundStatus,
		}
		if err := tx.Model(booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		return tx.Preload("Room").First(&updated, booking.ID).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notify(realtime.EventBookingUpdated, &updated)
	return &updated, nil
}

// cancelGuard rejects cancellation of bookings already in a terminal state.
// A second cancel gets its own error; checked-out and no-show stays are done
// and cannot be unwound.
func cancelGuard(status string) error {
	if status == models.BookingStatusCancelled {
		return ErrAlreadyCancelled
	}
	if IsTerminalStatus(status) {
		return ErrCompletedBooking
	}
	return nil
}

// paymentAutoConfirms reports whether recording this payment status should
// promote the booking to confirmed. Only a completed payment on a
// still-pending booking does; an already confirmed booking stays untouched.
func paymentAutoConfirms(paymentStatus, bookingStatus string) bool {
	return paymentStatus == models.PaymentStatusCompleted &&
		bookingStatus == models.BookingStatusPending
}

func lockBookingByReference(tx *gorm.DB, referenceCode string) (*models.Booking, error) {
	var booking models.Booking
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reference_code = ?", referenceCode).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", referenceCode, err)
	}
	return &booking, nil
}

// GetByReference loads a booking with its room resolved.
func (s *BookingService) GetByReference(referenceCode string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").
		Where("reference_code = ?", referenceCode).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", referenceCode, err)
	}
	return &booking, nil
}

// GetByConfirmationNumber resolves the secondary human-facing identifier.
func (s *BookingService) GetByConfirmationNumber(number string) (*models.Booking, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	var booking models.Booking
	err := s.DB.Preload("Room").
		Where("confirmation_number = ?", number).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking by confirmation %s: %w", number, err)
	}
	return &booking, nil
}

// BookingFilters narrows List results.
type BookingFilters struct {
	Status string
	RoomID uint
}

// List returns bookings newest first, with rooms preloaded.
func (s *BookingService) List(filters BookingFilters) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.RoomID != 0 {
		q = q.Where("room_id = ?", filters.RoomID)
	}

	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

// notify broadcasts a lifecycle event to the admin group. Best-effort: a
// missing relay or slow consumer never affects the booking write.
func (s *BookingService) notify(eventType string, booking *models.Booking) {
	if s.Relay == nil {
		return
	}
	s.Relay.BroadcastToAdmins(eventType, booking)
}

// sendConfirmationEmail is best-effort; failures are logged only.
func (s *BookingService) sendConfirmationEmail(booking *models.Booking) {
	if strings.TrimSpace(booking.GuestEmail) == "" {
		return
	}
	conf := ""
	if booking.ConfirmationNumber != nil {
		conf = *booking.ConfirmationNumber
	}
	err := utils.SendBookingConfirmationEmail(utils.BookingEmail{
		Recipient:          booking.GuestEmail,
		GuestName:          booking.GuestName,
		ReferenceCode:      booking.ReferenceCode,
		ConfirmationNumber: conf,
		RoomName:           booking.Room.Name,
		RoomNumber:         booking.Room.RoomNumber,
		CheckIn:            booking.CheckIn.Format("2006-01-02"),
		CheckOut:           booking.CheckOut.Format("2006-01-02"),
		Nights:             booking.Nights,
		Total:              booking.Total,
	})
	if err != nil {
		log.Printf("warning: confirmation email to %s for %s failed: %v",
			utils.MaskEmail(booking.GuestEmail), booking.ReferenceCode, err)
	}
}
