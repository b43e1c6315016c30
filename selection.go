package fundboard

import "fmt"

// Level is the drill-down depth a selection has reached.
type Level int

const (
	// Top shows the fund-type overview, nothing selected.
	Top Level = iota
	// TypeSelected shows the sub-funds of the selected fund type.
	TypeSelected
	// FundSelected shows the asset rows of the selected sub-fund.
	FundSelected
)

func (l Level) String() string {
	switch l {
	case Top:
		return "top"
	case TypeSelected:
		return "type"
	case FundSelected:
		return "fund"
	default:
		return "unknown"
	}
}

// Selection holds the two-level drill-down state: the selected fund type and
// the selected sub-fund, "" meaning none.
//
// Invariant: Fund is non-empty only while FundType is non-empty. The zero
// value is the initial Top state. Transitions are value-returning: the caller
// owns the state and is responsible for re-projecting the views after a
// change, which keeps this machine independent of any UI event loop.
type Selection struct {
	FundType string
	Fund     string
}

// Level returns the drill-down level this selection has reached.
func (s Selection) Level() Level {
	switch {
	case s.FundType == "":
		return Top
	case s.Fund == "":
		return TypeSelected
	default:
		return FundSelected
	}
}

// SelectFundType applies a fund-type selection event.
//
// Re-selecting the active fund type toggles back to Top. Selecting any other
// value moves to TypeSelected and unconditionally clears the sub-fund: a
// sub-fund must never outlive the fund type it was selected under.
func (s Selection) SelectFundType(value string) Selection {
	if value == s.FundType {
		return Selection{}
	}
	return Selection{FundType: value}
}

// SelectSubFund applies a sub-fund selection event.
//
// Re-selecting the active sub-fund toggles back to TypeSelected, keeping the
// fund type. Selecting a sub-fund with no fund type selected is a caller
// contract violation (the presentation layer must not offer that control at
// the Top level) and panics rather than papering over the integration bug.
func (s Selection) SelectSubFund(value string) Selection {
	if s.FundType == "" {
		panic(fmt.Sprintf("fundboard: SelectSubFund(%q) called with no fund type selected", value))
	}
	if value == s.Fund {
		return Selection{FundType: s.FundType}
	}
	return Selection{FundType: s.FundType, Fund: value}
}
