package services

import (
	"math"
	"time"

	"hotel-reservation-api/utils"
)

// PricingConfig holds the tax rate and the fixed per-booking service fee.
type PricingConfig struct {
	TaxRate    float64
	ServiceFee float64
}

// PricingFromEnv reads TAX_RATE and SERVICE_FEE with sensible defaults.
func PricingFromEnv() PricingConfig {
	return PricingConfig{
		TaxRate:    utils.EnvFloat("TAX_RATE", 0.12),
		ServiceFee: utils.EnvFloat("SERVICE_FEE", 25.0),
	}
}

// PriceBreakdown is the computed monetary breakdown of a booking.
type PriceBreakdown struct {
	Nights     int
	Subtotal   float64
	Taxes      float64
	ServiceFee float64
	Total      float64
}

// RoundToCents applies standard rounding to two decimal places.
func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeDate truncates a timestamp to midnight UTC. Stay ranges are
// calendar-day based; the half-open [checkIn, checkOut) convention means a
// checkout and a check-in on the same day never conflict.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateNights returns ceil((checkOut - checkIn) / 1 day) for an already
// validated range.
func CalculateNights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(math.Ceil(hours / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// CalculatePricing computes subtotal, taxes, fee and total for a stay,
// each rounded to cents.
func CalculatePricing(nightlyRate float64, nights int, cfg PricingConfig) PriceBreakdown {
	subtotal := RoundToCents(nightlyRate * float64(nights))
	taxes := RoundToCents(subtotal * cfg.TaxRate)
	fee := RoundToCents(cfg.ServiceFee)
	return PriceBreakdown{
		Nights:     nights,
		Subtotal:   subtotal,
		Taxes:      taxes,
		ServiceFee: fee,
		Total:      RoundToCents(subtotal + taxes + fee),
	}
}
