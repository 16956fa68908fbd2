package domain

import "time"

// RentalModification is a partial amendment to an existing rental.
// Each override is optional; nil means "keep the original value".
// The deductible reduction option cannot be amended and is always
// inherited from the original rental.
type RentalModification struct {
	ID        int
	RentalID  int
	StartDate *time.Time
	EndDate   *time.Time
	Distance  *int
}

// Apply overlays the modification onto the original rental and returns
// the resulting hypothetical rental. The original is left untouched.
func (m RentalModification) Apply(original Rental) Rental {
	modified := original
	if m.StartDate != nil {
		modified.StartDate = *m.StartDate
	}
	if m.EndDate != nil {
		modified.EndDate = *m.EndDate
	}
	if m.Distance != nil {
		modified.Distance = *m.Distance
	}
	return modified
}
