package service

import (
	"math"

	"rental/internal/domain"
)

// PricingService computes rental prices from the owner's car rates and
// the degressive day-pricing schedule.
type PricingService struct{}

// NewPricingService creates a new PricingService.
func NewPricingService() *PricingService {
	return &PricingService{}
}

// dayBucket is one tier of the degressive discount schedule: up to Cap
// days past Offset are billed at Rate times the daily price.
type dayBucket struct {
	Offset int
	Cap    int
	Rate   float64
}

// The schedule: day 1 at full price, days 2-4 at 10% off, days 5-10 at
// 30% off, day 11 onward at 50% off.
var dayBuckets = []dayBucket{
	{Offset: 0, Cap: 1, Rate: 1.0},
	{Offset: 1, Cap: 3, Rate: 0.9},
	{Offset: 4, Cap: 6, Rate: 0.7},
	{Offset: 10, Cap: math.MaxInt, Rate: 0.5},
}

// PriceForDays returns the time component of a rental price for the
// given daily rate and inclusive day count. The discounted parts are
// summed as floats and rounded half away from zero exactly once, on the
// final sum.
func (s *PricingService) PriceForDays(pricePerDay, days int) int {
	var total float64
	for _, b := range dayBuckets {
		n := days - b.Offset
		if n <= 0 {
			continue
		}
		if n > b.Cap {
			n = b.Cap
		}
		total += float64(n*pricePerDay) * b.Rate
	}
	return int(math.Round(total))
}

// ComputePrice returns the total price of a rental on the given car:
// the degressive day price plus the per-kilometer charge.
func (s *PricingService) ComputePrice(rental domain.Rental, car domain.Car) int {
	return s.PriceForDays(car.PricePerDay, rental.Days()) + rental.Distance*car.PricePerKm
}
