package services

import (
	"fmt"
	"time"

	"hotel-reservation-api/models"

	"gorm.io/gorm"
)

// AnalyticsService aggregates bookings into time-bucketed revenue and
// volume reports for the admin dashboard.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// RevenuePoint is one bucket of the revenue time series.
type RevenuePoint struct {
	Bucket   string  `json:"bucket"`
	Revenue  float64 `json:"revenue"`
	Bookings int64   `json:"bookings"`
}

// bucketFormats maps a report period to a MySQL DATE_FORMAT expression.
var bucketFormats = map[string]string{
	"day":   "%Y-%m-%d",
	"week":  "%x-W%v",
	"month": "%Y-%m",
	"year":  "%Y",
}

func IsValidPeriod(period string) bool {
	_, ok := bucketFormats[period]
	return ok
}

// Revenue sums completed-payment booking totals grouped by the requested
// period. Only bookings whose payment actually completed count as revenue.
func (s *AnalyticsService) Revenue(period string) ([]RevenuePoint, error) {
	format, ok := bucketFormats[period]
	if !ok {
		return nil, fmt.Errorf("validation: unknown period %q", period)
	}

	var results []RevenuePoint
	err := s.DB.Model(&models.Booking{}).
		Select("DATE_FORMAT(created_at, ?) AS bucket, "+
			"ROUND(SUM(total), 2) AS revenue, COUNT(id) AS bookings", format).
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Group("bucket").
		Order("bucket ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	if results == nil {
		results = []RevenuePoint{}
	}
	return results, nil
}

// DashboardStats is the admin dashboard stat card.
type DashboardStats struct {
	TotalRooms       int64   `json:"totalRooms"`
	TotalBookings    int64   `json:"totalBookings"`
	ActiveBookings   int64   `json:"activeBookings"`
	TodayArrivals    int64   `json:"todayArrivals"`
	PendingContacts  int64   `json:"pendingContacts"`
	CompletedRevenue float64 `json:"completedRevenue"`
}

func (s *AnalyticsService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	today := NormalizeDate(time.Now().UTC())

	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	err := s.DB.Model(&models.Booking{}).
		Where("status IN ?", conflictStatuses).
		Count(&stats.ActiveBookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}
	err = s.DB.Model(&models.Booking{}).
		Where("check_in = ?", today).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&stats.TodayArrivals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count arrivals: %w", err)
	}
	err = s.DB.Model(&models.Contact{}).
		Where("status IN ?", []string{models.ContactStatusNew, models.ContactStatusInProgress}).
		Count(&stats.PendingContacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pending contacts: %w", err)
	}

	var revenue struct{ Total float64 }
	err = s.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Scan(&revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	stats.CompletedRevenue = RoundToCents(revenue.Total)

	return &stats, nil
}
