package service

import (
	"testing"
	"time"

	"rental/internal/domain"
)

func TestPriceForDays_DiscountTiers(t *testing.T) {
	t.Parallel()

	s := NewPricingService()

	tests := []struct {
		name        string
		pricePerDay int
		days        int
		want        int
	}{
		{name: "single day is full price", pricePerDay: 2000, days: 1, want: 2000},
		{name: "second day at 10 percent off", pricePerDay: 2000, days: 2, want: 3800},
		{name: "fourth day closes the 10 percent tier", pricePerDay: 2000, days: 4, want: 7400},
		{name: "fifth day opens the 30 percent tier", pricePerDay: 3000, days: 5, want: 13200},
		{name: "tenth day closes the 30 percent tier", pricePerDay: 2000, days: 10, want: 15800},
		{name: "eleventh day adds half price", pricePerDay: 2000, days: 11, want: 16800},
		{name: "long rental stays at half price", pricePerDay: 2000, days: 12, want: 17800},
		{name: "half rounds away from zero", pricePerDay: 75, days: 2, want: 143},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.PriceForDays(tt.pricePerDay, tt.days)
			if got != tt.want {
				t.Errorf("PriceForDays(%d, %d) = %d, want %d", tt.pricePerDay, tt.days, got, tt.want)
			}
		})
	}
}

func TestComputePrice_AddsDistanceCharge(t *testing.T) {
	t.Parallel()

	s := NewPricingService()
	car := domain.Car{ID: 1, PricePerDay: 2000, PricePerKm: 10}

	tests := []struct {
		name   string
		rental domain.Rental
		want   int
	}{
		{
			name: "one day and 100km",
			rental: domain.Rental{
				ID:        1,
				CarID:     1,
				StartDate: date(2017, 12, 8),
				EndDate:   date(2017, 12, 8),
				Distance:  100,
			},
			want: 3000,
		},
		{
			name: "three days and 300km",
			rental: domain.Rental{
				ID:        2,
				CarID:     1,
				StartDate: date(2017, 12, 8),
				EndDate:   date(2017, 12, 10),
				Distance:  300,
			},
			want: 8600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ComputePrice(tt.rental, car)
			if got != tt.want {
				t.Errorf("ComputePrice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPriceForDays_MonotonicInDays(t *testing.T) {
	t.Parallel()

	s := NewPricingService()

	prev := 0
	for days := 1; days <= 30; days++ {
		got := s.PriceForDays(2000, days)
		if got < prev {
			t.Fatalf("PriceForDays(2000, %d) = %d, less than %d for %d days", days, got, prev, days-1)
		}
		prev = got
	}
}

func TestPriceForDays_MonotonicInRate(t *testing.T) {
	t.Parallel()

	s := NewPricingService()

	prev := 0
	for rate := 0; rate <= 5000; rate += 250 {
		got := s.PriceForDays(rate, 7)
		if got < prev {
			t.Fatalf("PriceForDays(%d, 7) = %d, less than %d for rate %d", rate, got, prev, rate-250)
		}
		prev = got
	}
}
