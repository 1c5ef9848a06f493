package game

import (
	"fmt"

	"splendor/chips"
)

// Label tags the kind of action a Decision carries.
type Label int

const (
	PurchaseLabel Label = iota
	TakeLabel
	ReserveExposedLabel
	ReserveCoveredLabel
)

func (l Label) String() string {
	switch l {
	case PurchaseLabel:
		return "PURCHASE"
	case TakeLabel:
		return "TAKE"
	case ReserveExposedLabel:
		return "RESERVE_EXPOSED"
	case ReserveCoveredLabel:
		return "RESERVE_COVERED"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Decision is an agent's chosen action. Only the payload matching Label is set.
type Decision struct {
	Label    Label
	Purchase PurchaseOption
	Take     chips.Exchange
	Reserve  ReserveOption
}

func Purchase(opt PurchaseOption) Decision {
	return Decision{Label: PurchaseLabel, Purchase: opt}
}

func Take(ex chips.Exchange) Decision {
	return Decision{Label: TakeLabel, Take: ex}
}

func ReserveExposed(opt ReserveOption) Decision {
	return Decision{Label: ReserveExposedLabel, Reserve: opt}
}

func ReserveCovered(opt ReserveOption) Decision {
	return Decision{Label: ReserveCoveredLabel, Reserve: opt}
}

func (d Decision) String() string {
	switch d.Label {
	case PurchaseLabel:
		return fmt.Sprintf("%s %s", d.Label, d.Purchase.Slot.Card)
	case TakeLabel:
		return fmt.Sprintf("%s %s", d.Label, d.Take)
	case ReserveExposedLabel, ReserveCoveredLabel:
		return fmt.Sprintf("%s %s %s", d.Label, d.Reserve.Slot.Card, d.Reserve.Exchange)
	default:
		return d.Label.String()
	}
}
