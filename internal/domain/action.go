package domain

// Party identifies one of the five settlement parties.
type Party string

const (
	PartyDriver     Party = "driver"
	PartyOwner      Party = "owner"
	PartyInsurance  Party = "insurance"
	PartyAssistance Party = "assistance"
	PartyDrivy      Party = "drivy"
)

// Parties lists the settlement parties in the fixed output order.
// Action sequences are always emitted in this order.
var Parties = []Party{PartyDriver, PartyOwner, PartyInsurance, PartyAssistance, PartyDrivy}

// ActionType classifies an action by the sign of its amount.
type ActionType string

const (
	ActionTypeCredit ActionType = "credit"
	ActionTypeDebit  ActionType = "debit"
)

// Action is a signed monetary ledger entry for one settlement party.
// A negative amount debits the party, a positive amount credits it.
type Action struct {
	Who    Party
	Amount int
}

// Type returns credit for strictly positive amounts and debit otherwise.
// Zero is a debit; the boundary matters for zero-valued delta actions.
func (a Action) Type() ActionType {
	if a.Amount > 0 {
		return ActionTypeCredit
	}
	return ActionTypeDebit
}

// AbsAmount returns the displayed amount; sign is conveyed by Type.
func (a Action) AbsAmount() int {
	if a.Amount < 0 {
		return -a.Amount
	}
	return a.Amount
}

// Diff returns the delta action for the same party: the amount by which
// this action exceeds the previous one.
func (a Action) Diff(previous Action) Action {
	return Action{Who: a.Who, Amount: a.Amount - previous.Amount}
}
