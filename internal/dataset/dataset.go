// Package dataset parses the structured input document into typed domain
// entities and provides keyed lookups over the loaded batch. Loosely-typed
// records never cross into the pricing or ledger logic.
package dataset

import (
	"fmt"
	"time"

	"rental/internal/domain"
)

const dateLayout = "2006-01-02"

// CarInput is the wire shape of a car record.
type CarInput struct {
	ID          int `json:"id"`
	PricePerDay int `json:"price_per_day"`
	PricePerKm  int `json:"price_per_km"`
}

// RentalInput is the wire shape of a rental record. Dates are ISO 8601
// calendar dates (yyyy-mm-dd).
type RentalInput struct {
	ID                  int    `json:"id"`
	CarID               int    `json:"car_id"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	Distance            int    `json:"distance"`
	DeductibleReduction bool   `json:"deductible_reduction"`
}

// ModificationInput is the wire shape of a rental modification. The
// start_date, end_date and distance fields are each optional.
type ModificationInput struct {
	ID        int     `json:"id"`
	RentalID  int     `json:"rental_id"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Distance  *int    `json:"distance"`
}

// Input is the full input document for one batch run.
type Input struct {
	Cars          []CarInput          `json:"cars"`
	Rentals       []RentalInput       `json:"rentals"`
	Modifications []ModificationInput `json:"rental_modifications"`
}

// Dataset holds the validated batch with keyed lookups. It is read-only
// after Load.
type Dataset struct {
	cars          map[int]domain.Car
	rentals       map[int]domain.Rental
	rentalOrder   []int
	modifications []domain.RentalModification
}

// Load validates the input document and builds the dataset. It fails fast
// on the first malformed field or dangling reference, identifying the
// offending record; a batch is processed fully or not at all.
func Load(in Input) (*Dataset, error) {
	ds := &Dataset{
		cars:    make(map[int]domain.Car, len(in.Cars)),
		rentals: make(map[int]domain.Rental, len(in.Rentals)),
	}

	for _, c := range in.Cars {
		if _, dup := ds.cars[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate car id %d", ErrInvalidInput, c.ID)
		}
		if c.PricePerDay < 0 || c.PricePerKm < 0 {
			return nil, fmt.Errorf("%w: car %d: negative price", ErrInvalidInput, c.ID)
		}
		ds.cars[c.ID] = domain.Car{ID: c.ID, PricePerDay: c.PricePerDay, PricePerKm: c.PricePerKm}
	}

	for _, r := range in.Rentals {
		if _, dup := ds.rentals[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate rental id %d", ErrInvalidInput, r.ID)
		}
		start, err := parseDate(r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: rental %d: start_date: %v", ErrInvalidInput, r.ID, err)
		}
		end, err := parseDate(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: rental %d: end_date: %v", ErrInvalidInput, r.ID, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: rental %d: end_date before start_date", ErrInvalidInput, r.ID)
		}
		if r.Distance < 0 {
			return nil, fmt.Errorf("%w: rental %d: negative distance", ErrInvalidInput, r.ID)
		}
		if _, ok := ds.cars[r.CarID]; !ok {
			return nil, fmt.Errorf("%w: rental %d references car %d", ErrNotFound, r.ID, r.CarID)
		}
		ds.rentalOrder = append(ds.rentalOrder, r.ID)
		ds.rentals[r.ID] = domain.Rental{
			ID:                  r.ID,
			CarID:               r.CarID,
			StartDate:           start,
			EndDate:             end,
			Distance:            r.Distance,
			DeductibleReduction: r.DeductibleReduction,
		}
	}

	for _, m := range in.Modifications {
		original, ok := ds.rentals[m.RentalID]
		if !ok {
			return nil, fmt.Errorf("%w: rental_modification %d references rental %d", ErrNotFound, m.ID, m.RentalID)
		}

		mod := domain.RentalModification{ID: m.ID, RentalID: m.RentalID, Distance: m.Distance}
		if m.StartDate != nil {
			start, err := parseDate(*m.StartDate)
			if err != nil {
				return nil, fmt.Errorf("%w: rental_modification %d: start_date: %v", ErrInvalidInput, m.ID, err)
			}
			mod.StartDate = &start
		}
		if m.EndDate != nil {
			end, err := parseDate(*m.EndDate)
			if err != nil {
				return nil, fmt.Errorf("%w: rental_modification %d: end_date: %v", ErrInvalidInput, m.ID, err)
			}
			mod.EndDate = &end
		}
		if m.Distance != nil && *m.Distance < 0 {
			return nil, fmt.Errorf("%w: rental_modification %d: negative distance", ErrInvalidInput, m.ID)
		}

		// The overlaid rental must satisfy the same invariants as a
		// loaded one.
		modified := mod.Apply(original)
		if modified.EndDate.Before(modified.StartDate) {
			return nil, fmt.Errorf("%w: rental_modification %d: end_date before start_date", ErrInvalidInput, m.ID)
		}

		ds.modifications = append(ds.modifications, mod)
	}

	return ds, nil
}

// CarByID returns the car with the given id.
func (d *Dataset) CarByID(id int) (domain.Car, error) {
	car, ok := d.cars[id]
	if !ok {
		return domain.Car{}, fmt.Errorf("%w: car %d", ErrNotFound, id)
	}
	return car, nil
}

// RentalByID returns the rental with the given id.
func (d *Dataset) RentalByID(id int) (domain.Rental, error) {
	rental, ok := d.rentals[id]
	if !ok {
		return domain.Rental{}, fmt.Errorf("%w: rental %d", ErrNotFound, id)
	}
	return rental, nil
}

// Rentals returns all rentals in input order.
func (d *Dataset) Rentals() []domain.Rental {
	rentals := make([]domain.Rental, 0, len(d.rentalOrder))
	for _, id := range d.rentalOrder {
		rentals = append(rentals, d.rentals[id])
	}
	return rentals
}

// Modifications returns all rental modifications in input order.
func (d *Dataset) Modifications() []domain.RentalModification {
	return d.modifications
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t, nil
}
