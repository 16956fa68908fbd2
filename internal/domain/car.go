package domain

// Car represents a rentable car and its owner's pricing.
// Cars are loaded once from the input dataset and never mutated.
type Car struct {
	ID          int
	PricePerDay int // currency units per rental day
	PricePerKm  int // currency units per driven kilometer
}
