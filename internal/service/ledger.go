package service

import (
	"math"

	"rental/internal/domain"
)

const (
	// commissionRate is the share of the rental price taken as fees.
	commissionRate = 0.3

	// assistancePricePerDay is the fixed daily assistance fee.
	assistancePricePerDay = 100

	// DefaultDeductibleReductionPerDay is the daily surcharge for the
	// deductible reduction option when none is configured.
	DefaultDeductibleReductionPerDay = 400
)

// LedgerService splits a rental price into its fee components and builds
// the per-party settlement actions.
type LedgerService struct {
	deductibleReductionPerDay int
}

// NewLedgerService creates a LedgerService charging the given daily rate
// for the deductible reduction option. A rate of zero or less falls back
// to the default.
func NewLedgerService(deductibleReductionPerDay int) *LedgerService {
	if deductibleReductionPerDay <= 0 {
		deductibleReductionPerDay = DefaultDeductibleReductionPerDay
	}
	return &LedgerService{deductibleReductionPerDay: deductibleReductionPerDay}
}

// ComputeFees splits the commission on a rental price. The commission
// total is rounded half away from zero once; the insurance cut uses
// truncating division and the platform fee takes the remainder, which
// may be negative for short or cheap rentals.
func (s *LedgerService) ComputeFees(price, days int) domain.Fees {
	total := int(math.Round(float64(price) * commissionRate))
	insurance := total / 2
	assistance := days * assistancePricePerDay
	return domain.Fees{
		InsuranceFee:  insurance,
		AssistanceFee: assistance,
		DrivyFee:      total - insurance - assistance,
	}
}

// ComputeOption returns the price of the deductible reduction option for
// the rental, zero when the option was not taken.
func (s *LedgerService) ComputeOption(rental domain.Rental) int {
	if !rental.DeductibleReduction {
		return 0
	}
	return rental.Days() * s.deductibleReductionPerDay
}

// BuildActions returns the five settlement actions for the given price,
// fees and option amount, in the fixed party order. The driver's payment
// exactly funds the four credits, so the amounts always sum to zero.
func (s *LedgerService) BuildActions(price int, fees domain.Fees, option int) []domain.Action {
	return []domain.Action{
		{Who: domain.PartyDriver, Amount: -(price + option)},
		{Who: domain.PartyOwner, Amount: price - fees.InsuranceFee - fees.AssistanceFee - fees.DrivyFee},
		{Who: domain.PartyInsurance, Amount: fees.InsuranceFee},
		{Who: domain.PartyAssistance, Amount: fees.AssistanceFee},
		{Who: domain.PartyDrivy, Amount: fees.DrivyFee + option},
	}
}
