package domain

// Fees is the commission split taken on a rental's price.
// DrivyFee is the remainder after the insurance and assistance cuts and
// may be negative for very short or cheap rentals; it is never clamped.
type Fees struct {
	InsuranceFee  int
	AssistanceFee int
	DrivyFee      int
}

// Total returns the full commission taken on the rental.
func (f Fees) Total() int {
	return f.InsuranceFee + f.AssistanceFee + f.DrivyFee
}
