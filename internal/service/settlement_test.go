package service

import (
	"context"
	"errors"
	"testing"

	"rental/internal/dataset"
	"rental/internal/domain"
)

func newSettlementService() *SettlementService {
	return NewSettlementService(NewPricingService(), NewLedgerService(0))
}

func mustLoad(t *testing.T, in dataset.Input) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(in)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return ds
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// oneDayRental is the input used across the settlement tests: a one-day
// 100km rental on a 2000/day, 10/km car. Price 3000, commission 900.
func oneDayRental(distance int) dataset.Input {
	return dataset.Input{
		Cars: []dataset.CarInput{
			{ID: 1, PricePerDay: 2000, PricePerKm: 10},
		},
		Rentals: []dataset.RentalInput{
			{ID: 1, CarID: 1, StartDate: "2017-12-08", EndDate: "2017-12-08", Distance: distance},
		},
	}
}

func TestQuoteRentals(t *testing.T) {
	t.Parallel()

	in := dataset.Input{
		Cars: []dataset.CarInput{
			{ID: 1, PricePerDay: 2000, PricePerKm: 10},
		},
		Rentals: []dataset.RentalInput{
			{ID: 1, CarID: 1, StartDate: "2017-12-08", EndDate: "2017-12-08", Distance: 100},
			{ID: 2, CarID: 1, StartDate: "2017-12-08", EndDate: "2017-12-09", Distance: 50, DeductibleReduction: true},
		},
	}

	quotes, err := newSettlementService().QuoteRentals(context.Background(), mustLoad(t, in))
	if err != nil {
		t.Fatalf("QuoteRentals() failed: %v", err)
	}

	want := []RentalQuote{
		{
			RentalID: 1,
			Price:    3000,
			Option:   0,
			Fees:     domain.Fees{InsuranceFee: 450, AssistanceFee: 100, DrivyFee: 350},
		},
		{
			RentalID: 2,
			// 2000 + 1800 + 50*10 = 4300; commission round(1290) = 1290
			Price:  4300,
			Option: 800,
			Fees:   domain.Fees{InsuranceFee: 645, AssistanceFee: 200, DrivyFee: 445},
		},
	}
	if len(quotes) != len(want) {
		t.Fatalf("got %d quotes, want %d", len(quotes), len(want))
	}
	for i, w := range want {
		if quotes[i] != w {
			t.Errorf("quote[%d] = %+v, want %+v", i, quotes[i], w)
		}
	}
}

func TestActionsForRentals(t *testing.T) {
	t.Parallel()

	results, err := newSettlementService().ActionsForRentals(context.Background(), mustLoad(t, oneDayRental(100)))
	if err != nil {
		t.Fatalf("ActionsForRentals() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	want := []domain.Action{
		{Who: domain.PartyDriver, Amount: -3000},
		{Who: domain.PartyOwner, Amount: 2100},
		{Who: domain.PartyInsurance, Amount: 450},
		{Who: domain.PartyAssistance, Amount: 100},
		{Who: domain.PartyDrivy, Amount: 350},
	}
	for i, w := range want {
		if results[0].Actions[i] != w {
			t.Errorf("action[%d] = %+v, want %+v", i, results[0].Actions[i], w)
		}
	}
}

func TestSettleModifications_NoOverridesYieldsZeroDeltas(t *testing.T) {
	t.Parallel()

	in := oneDayRental(100)
	in.Modifications = []dataset.ModificationInput{
		{ID: 1, RentalID: 1},
	}

	results, err := newSettlementService().SettleModifications(context.Background(), mustLoad(t, in))
	if err != nil {
		t.Fatalf("SettleModifications() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	actions := results[0].Actions
	if len(actions) != len(domain.Parties) {
		t.Fatalf("got %d delta actions, want %d", len(actions), len(domain.Parties))
	}
	for i, a := range actions {
		if a.Who != domain.Parties[i] {
			t.Errorf("delta[%d].Who = %s, want %s", i, a.Who, domain.Parties[i])
		}
		if a.Amount != 0 {
			t.Errorf("delta for %s = %d, want 0", a.Who, a.Amount)
		}
		if a.Type() != domain.ActionTypeDebit {
			t.Errorf("zero delta for %s classified %s, want debit", a.Who, a.Type())
		}
	}
}

func TestSettleModifications_WidenedDistance(t *testing.T) {
	t.Parallel()

	in := oneDayRental(100)
	in.Modifications = []dataset.ModificationInput{
		{ID: 1, RentalID: 1, Distance: intPtr(200)},
	}

	results, err := newSettlementService().SettleModifications(context.Background(), mustLoad(t, in))
	if err != nil {
		t.Fatalf("SettleModifications() failed: %v", err)
	}

	// Original price 3000, modified price 4000.
	want := []domain.Action{
		{Who: domain.PartyDriver, Amount: -1000},
		{Who: domain.PartyOwner, Amount: 700},
		{Who: domain.PartyInsurance, Amount: 150},
		{Who: domain.PartyAssistance, Amount: 0},
		{Who: domain.PartyDrivy, Amount: 150},
	}

	actions := results[0].Actions
	sum := 0
	for i, w := range want {
		if actions[i] != w {
			t.Errorf("delta[%d] = %+v, want %+v", i, actions[i], w)
		}
		sum += actions[i].Amount
	}
	if sum != 0 {
		t.Errorf("deltas sum to %d, want 0", sum)
	}
	if results[0].ModificationID != 1 || results[0].RentalID != 1 {
		t.Errorf("result ids = (%d, %d), want (1, 1)", results[0].ModificationID, results[0].RentalID)
	}
}

func TestSettleModifications_ExtendedPeriod(t *testing.T) {
	t.Parallel()

	in := oneDayRental(100)
	in.Modifications = []dataset.ModificationInput{
		{ID: 1, RentalID: 1, EndDate: strPtr("2017-12-10")},
	}

	results, err := newSettlementService().SettleModifications(context.Background(), mustLoad(t, in))
	if err != nil {
		t.Fatalf("SettleModifications() failed: %v", err)
	}

	// Modified: 3 days -> price 5600 + 1000 = 6600, commission 1980,
	// insurance 990, assistance 300, drivy 690.
	want := []domain.Action{
		{Who: domain.PartyDriver, Amount: -3600},
		{Who: domain.PartyOwner, Amount: 2520},
		{Who: domain.PartyInsurance, Amount: 540},
		{Who: domain.PartyAssistance, Amount: 200},
		{Who: domain.PartyDrivy, Amount: 340},
	}
	for i, w := range want {
		if results[0].Actions[i] != w {
			t.Errorf("delta[%d] = %+v, want %+v", i, results[0].Actions[i], w)
		}
	}
}

func TestSettleModifications_ReverseModificationNegatesDeltas(t *testing.T) {
	t.Parallel()

	svc := newSettlementService()

	forward := oneDayRental(100)
	forward.Modifications = []dataset.ModificationInput{
		{ID: 1, RentalID: 1, Distance: intPtr(200), EndDate: strPtr("2017-12-09")},
	}

	// The reverse batch starts from the modified rental and amends the
	// fields back to their original values.
	reverse := oneDayRental(200)
	reverse.Rentals[0].EndDate = "2017-12-09"
	reverse.Modifications = []dataset.ModificationInput{
		{ID: 1, RentalID: 1, Distance: intPtr(100), EndDate: strPtr("2017-12-08")},
	}

	forwardResults, err := svc.SettleModifications(context.Background(), mustLoad(t, forward))
	if err != nil {
		t.Fatalf("forward SettleModifications() failed: %v", err)
	}
	reverseResults, err := svc.SettleModifications(context.Background(), mustLoad(t, reverse))
	if err != nil {
		t.Fatalf("reverse SettleModifications() failed: %v", err)
	}

	for i := range domain.Parties {
		f := forwardResults[0].Actions[i]
		r := reverseResults[0].Actions[i]
		if f.Who != r.Who {
			t.Fatalf("party mismatch at %d: %s vs %s", i, f.Who, r.Who)
		}
		if r.Amount != -f.Amount {
			t.Errorf("reverse delta for %s = %d, want %d", r.Who, r.Amount, -f.Amount)
		}
	}
}

func TestSettlementService_NilDataset(t *testing.T) {
	t.Parallel()

	svc := newSettlementService()
	ctx := context.Background()

	if _, err := svc.QuoteRentals(ctx, nil); !errors.Is(err, ErrNilDataset) {
		t.Errorf("QuoteRentals(nil) error = %v, want ErrNilDataset", err)
	}
	if _, err := svc.ActionsForRentals(ctx, nil); !errors.Is(err, ErrNilDataset) {
		t.Errorf("ActionsForRentals(nil) error = %v, want ErrNilDataset", err)
	}
	if _, err := svc.SettleModifications(ctx, nil); !errors.Is(err, ErrNilDataset) {
		t.Errorf("SettleModifications(nil) error = %v, want ErrNilDataset", err)
	}
}
