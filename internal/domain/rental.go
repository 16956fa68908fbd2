package domain

import "time"

// Rental represents a single car booking over an inclusive date range.
// Rentals are loaded once from the input dataset and never mutated;
// modified variants are derived copies, not updates.
type Rental struct {
	ID                  int
	CarID               int
	StartDate           time.Time
	EndDate             time.Time
	Distance            int // driven kilometers
	DeductibleReduction bool
}

// Days returns the inclusive day count of the rental period.
// A rental starting and ending on the same date lasts one day.
func (r Rental) Days() int {
	return int(r.EndDate.Sub(r.StartDate)/(24*time.Hour)) + 1
}
