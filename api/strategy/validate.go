package strategy

import (
	"github.com/straddleshift/configapi/pkg/timegrid"
)

// Violation names a single field rule that a submission broke.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator applies the business rules to a submission and produces the
// canonical document.
type Validator struct {
	strategyID string
	grid       *timegrid.Grid
}

func NewValidator(strategyID string, grid *timegrid.Grid) *Validator {
	return &Validator{strategyID: strategyID, grid: grid}
}

// Validate evaluates every rule and collects all violations rather than
// stopping at the first. On success it returns the canonical document with
// times formatted "HH:MM:SS" and the fixed strategy id; created_at and
// updated_at are owned by the upsert, not set here. No partial document is
// ever returned alongside violations.
func (v *Validator) Validate(sub RawSubmission) (*ConfigModel, []Violation) {
	var violations []Violation

	if sub.ShiftPoints < 0 {
		violations = append(violations, Violation{Field: "shift_points", Message: "ShiftPoints must be a non-negative integer."})
	}
	if sub.HedgePoints < 0 {
		violations = append(violations, Violation{Field: "hedge_points", Message: "HedgePoints must be a non-negative integer."})
	}
	if sub.OTMPoints < 0 {
		violations = append(violations, Violation{Field: "otm_points", Message: "OTMPoints must be a non-negative integer."})
	}
	if sub.ExpiryNo < 0 {
		violations = append(violations, Violation{Field: "expiry_no", Message: "ExpiryNo must be a non-negative integer."})
	}
	if sub.OrderLot < 1 {
		violations = append(violations, Violation{Field: "order_lot", Message: "OrderLot must be an integer >= 1."})
	}

	startTime, startOK := v.parseWindowTime(sub.StartTime, "start_time", "StartTime", &violations)
	endTime, endOK := v.parseWindowTime(sub.EndTime, "end_time", "EndTime", &violations)
	if startOK && endOK && startTime > endTime {
		violations = append(violations, Violation{Field: "start_time", Message: "StartTime must be <= EndTime"})
	}

	if len(violations) > 0 {
		return nil, violations
	}

	return &ConfigModel{
		StrategyID:  v.strategyID,
		Start:       sub.Start,
		Pause:       sub.Pause,
		Stop:        sub.Stop,
		CallEntry:   sub.CallEntry,
		PutEntry:    sub.PutEntry,
		ShiftHedge:  sub.ShiftHedge,
		FirstEntry:  sub.FirstEntry,
		OTMPoints:   sub.OTMPoints,
		HedgePoints: sub.HedgePoints,
		ShiftPoints: sub.ShiftPoints,
		Symbol:      sub.Symbol,
		ExpiryNo:    sub.ExpiryNo,
		OrderLot:    sub.OrderLot,
		StartTime:   startTime.String(),
		EndTime:     endTime.String(),
	}, nil
}

// parseWindowTime parses an "HH:MM:SS" window bound, snaps it onto the grid,
// and records a violation when it is unparseable or outside the allowed
// trading window.
func (v *Validator) parseWindowTime(s, field, label string, violations *[]Violation) (timegrid.TimeOfDay, bool) {
	t, err := timegrid.Parse(s)
	if err != nil {
		*violations = append(*violations, Violation{Field: field, Message: label + " must be a valid HH:MM:SS time."})
		return 0, false
	}
	if t != v.grid.Clamp(t) {
		*violations = append(*violations, Violation{Field: field, Message: label + " must be within " + MinTime.String() + " and " + MaxTime.String() + "."})
		return 0, false
	}
	return v.grid.At(v.grid.IndexOf(t)), true
}
