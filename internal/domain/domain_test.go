package domain

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRental_Days(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "same day counts as one", start: date(2017, 12, 8), end: date(2017, 12, 8), want: 1},
		{name: "inclusive range", start: date(2017, 12, 8), end: date(2017, 12, 10), want: 3},
		{name: "across month boundary", start: date(2017, 11, 29), end: date(2017, 12, 2), want: 4},
		{name: "across leap day", start: date(2016, 2, 28), end: date(2016, 3, 1), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rental{StartDate: tt.start, EndDate: tt.end}
			if got := r.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRentalModification_Apply(t *testing.T) {
	t.Parallel()

	original := Rental{
		ID:                  1,
		CarID:               7,
		StartDate:           date(2017, 12, 8),
		EndDate:             date(2017, 12, 10),
		Distance:            100,
		DeductibleReduction: true,
	}

	newEnd := date(2017, 12, 12)
	newDistance := 250
	mod := RentalModification{ID: 1, RentalID: 1, EndDate: &newEnd, Distance: &newDistance}

	modified := mod.Apply(original)

	if !modified.StartDate.Equal(original.StartDate) {
		t.Errorf("absent start_date override must keep original, got %v", modified.StartDate)
	}
	if !modified.EndDate.Equal(newEnd) {
		t.Errorf("EndDate = %v, want %v", modified.EndDate, newEnd)
	}
	if modified.Distance != newDistance {
		t.Errorf("Distance = %d, want %d", modified.Distance, newDistance)
	}
	if !modified.DeductibleReduction {
		t.Error("deductible reduction must be inherited unchanged")
	}
	if modified.ID != original.ID || modified.CarID != original.CarID {
		t.Error("identity fields must carry over")
	}

	// The original is untouched.
	if original.Distance != 100 || !original.EndDate.Equal(date(2017, 12, 10)) {
		t.Error("Apply must not mutate the original rental")
	}
}

func TestAction_Diff(t *testing.T) {
	t.Parallel()

	modified := Action{Who: PartyDriver, Amount: -4000}
	original := Action{Who: PartyDriver, Amount: -3000}

	delta := modified.Diff(original)
	if delta.Who != PartyDriver {
		t.Errorf("Diff().Who = %s, want driver", delta.Who)
	}
	if delta.Amount != -1000 {
		t.Errorf("Diff().Amount = %d, want -1000", delta.Amount)
	}
	if delta.Type() != ActionTypeDebit {
		t.Errorf("Diff().Type() = %s, want debit", delta.Type())
	}
	if delta.AbsAmount() != 1000 {
		t.Errorf("Diff().AbsAmount() = %d, want 1000", delta.AbsAmount())
	}
}
