package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateNights(t *testing.T) {
	assert.Equal(t, 2, CalculateNights(date(2025, 8, 1), date(2025, 8, 3)))
	assert.Equal(t, 1, CalculateNights(date(2025, 8, 1), date(2025, 8, 2)))
	assert.Equal(t, 31, CalculateNights(date(2025, 8, 1), date(2025, 9, 1)))
}

func TestCalculateNightsCeilsPartialDays(t *testing.T) {
	checkIn := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 8, 3, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, CalculateNights(checkIn, checkOut))
}

func TestCalculatePricingScenario(t *testing.T) {
	// Nightly rate 100, tax 12%, fee 25, 2 nights.
	p := CalculatePricing(100, 2, PricingConfig{TaxRate: 0.12, ServiceFee: 25})

	assert.Equal(t, 200.0, p.Subtotal)
	assert.Equal(t, 24.0, p.Taxes)
	assert.Equal(t, 25.0, p.ServiceFee)
	assert.Equal(t, 249.0, p.Total)
}

func TestCalculatePricingTotalIdentity(t *testing.T) {
	cfg := PricingConfig{TaxRate: 0.0825, ServiceFee: 17.5}
	rates := []float64{49.99, 75, 123.45, 500}
	for _, rate := range rates {
		for nights := 1; nights <= 14; nights++ {
			p := CalculatePricing(rate, nights, cfg)
			assert.Equal(t, RoundToCents(p.Subtotal+p.Taxes+p.ServiceFee), p.Total,
				"rate=%v nights=%d", rate, nights)
		}
	}
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 10.56, RoundToCents(10.556))
	assert.Equal(t, 10.55, RoundToCents(10.554))
	assert.Equal(t, 0.0, RoundToCents(0))
	assert.Equal(t, -2.35, RoundToCents(-2.346))
}

func TestNormalizeDate(t *testing.T) {
	ts := time.Date(2025, 8, 1, 17, 45, 12, 999, time.FixedZone("X", 3600))
	got := NormalizeDate(ts)
	assert.Equal(t, date(2025, 8, 1), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestPricingFromEnvDefaults(t *testing.T) {
	t.Setenv("TAX_RATE", "")
	t.Setenv("SERVICE_FEE", "")
	cfg := PricingFromEnv()
	assert.Equal(t, 0.12, cfg.TaxRate)
	assert.Equal(t, 25.0, cfg.ServiceFee)
}

func TestPricingFromEnvOverride(t *testing.T) {
	t.Setenv("TAX_RATE", "0.07")
	t.Setenv("SERVICE_FEE", "10")
	cfg := PricingFromEnv()
	assert.Equal(t, 0.07, cfg.TaxRate)
	assert.Equal(t, 10.0, cfg.ServiceFee)
}
