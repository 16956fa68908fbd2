package service

import (
	"context"
	"fmt"

	"rental/internal/dataset"
	"rental/internal/domain"
)

// SettlementService drives the pricing and ledger pipeline over a loaded
// dataset: per-rental quotes and actions, and per-modification deltas.
type SettlementService struct {
	pricing *PricingService
	ledger  *LedgerService
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(pricing *PricingService, ledger *LedgerService) *SettlementService {
	return &SettlementService{pricing: pricing, ledger: ledger}
}

// RentalQuote is the priced view of a single rental.
type RentalQuote struct {
	RentalID int
	Price    int
	Option   int
	Fees     domain.Fees
}

// RentalActions is the settlement view of a single rental.
type RentalActions struct {
	RentalID int
	Actions  []domain.Action
}

// ModificationResult is the delta settlement for one rental modification.
type ModificationResult struct {
	ModificationID int
	RentalID       int
	Actions        []domain.Action
}

// QuoteRentals prices every rental in the dataset, in input order.
func (s *SettlementService) QuoteRentals(ctx context.Context, ds *dataset.Dataset) ([]RentalQuote, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	rentals := ds.Rentals()
	quotes := make([]RentalQuote, 0, len(rentals))
	for _, rental := range rentals {
		car, err := ds.CarByID(rental.CarID)
		if err != nil {
			return nil, fmt.Errorf("rental %d: %w", rental.ID, err)
		}
		price := s.pricing.ComputePrice(rental, car)
		quotes = append(quotes, RentalQuote{
			RentalID: rental.ID,
			Price:    price,
			Option:   s.ledger.ComputeOption(rental),
			Fees:     s.ledger.ComputeFees(price, rental.Days()),
		})
	}
	return quotes, nil
}

// ActionsForRentals computes the five settlement actions for every
// rental in the dataset, in input order.
func (s *SettlementService) ActionsForRentals(ctx context.Context, ds *dataset.Dataset) ([]RentalActions, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	rentals := ds.Rentals()
	results := make([]RentalActions, 0, len(rentals))
	for _, rental := range rentals {
		actions, err := s.actionsForRental(ds, rental)
		if err != nil {
			return nil, err
		}
		results = append(results, RentalActions{RentalID: rental.ID, Actions: actions})
	}
	return results, nil
}

// SettleModifications resolves every rental modification in the dataset
// against its original rental and computes the per-party delta actions.
func (s *SettlementService) SettleModifications(ctx context.Context, ds *dataset.Dataset) ([]ModificationResult, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	mods := ds.Modifications()
	results := make([]ModificationResult, 0, len(mods))
	for _, mod := range mods {
		original, err := ds.RentalByID(mod.RentalID)
		if err != nil {
			return nil, fmt.Errorf("rental_modification %d: %w", mod.ID, err)
		}

		originalActions, err := s.actionsForRental(ds, original)
		if err != nil {
			return nil, fmt.Errorf("rental_modification %d: %w", mod.ID, err)
		}
		modifiedActions, err := s.actionsForRental(ds, mod.Apply(original))
		if err != nil {
			return nil, fmt.Errorf("rental_modification %d: %w", mod.ID, err)
		}

		deltas, err := deltaActions(originalActions, modifiedActions)
		if err != nil {
			return nil, fmt.Errorf("rental_modification %d: %w", mod.ID, err)
		}

		results = append(results, ModificationResult{
			ModificationID: mod.ID,
			RentalID:       mod.RentalID,
			Actions:        deltas,
		})
	}
	return results, nil
}

// actionsForRental runs the full pricing, fee and ledger pipeline for
// one rental.
func (s *SettlementService) actionsForRental(ds *dataset.Dataset, rental domain.Rental) ([]domain.Action, error) {
	car, err := ds.CarByID(rental.CarID)
	if err != nil {
		return nil, fmt.Errorf("rental %d: %w", rental.ID, err)
	}
	price := s.pricing.ComputePrice(rental, car)
	fees := s.ledger.ComputeFees(price, rental.Days())
	option := s.ledger.ComputeOption(rental)
	return s.ledger.BuildActions(price, fees, option), nil
}

// deltaActions subtracts the original action from the modified one for
// each party, matching by party rather than position, and returns the
// deltas in the fixed party order. Zero deltas are kept.
func deltaActions(original, modified []domain.Action) ([]domain.Action, error) {
	byParty := func(actions []domain.Action) map[domain.Party]domain.Action {
		m := make(map[domain.Party]domain.Action, len(actions))
		for _, a := range actions {
			m[a.Who] = a
		}
		return m
	}
	originalByParty := byParty(original)
	modifiedByParty := byParty(modified)

	deltas := make([]domain.Action, 0, len(domain.Parties))
	for _, party := range domain.Parties {
		before, okBefore := originalByParty[party]
		after, okAfter := modifiedByParty[party]
		if !okBefore || !okAfter {
			return nil, fmt.Errorf("%w: missing %s action", ErrPartyMismatch, party)
		}
		deltas = append(deltas, after.Diff(before))
	}
	return deltas, nil
}
