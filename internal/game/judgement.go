package game

type Quality uint8

const (
	Perfect Quality = iota
	Good
	Ok
	Miss
)

var Qualities = [...]Quality{Perfect, Good, Ok, Miss}

func (q Quality) String() string {
	switch q {
	case Perfect:
		return "perfect"
	case Good:
		return "good"
	case Ok:
		return "ok"
	case Miss:
		return "miss"
	}
	return "unknown"
}

// Label is the text shown in the hit feedback.
func (q Quality) Label() string {
	switch q {
	case Perfect:
		return "PERFECT"
	case Good:
		return "GOOD"
	case Ok:
		return "OK"
	case Miss:
		return "MISS"
	}
	return ""
}

// Judgement is one tier of the nested distance thresholds.
// A distance is in the tier when it is strictly below Range.
type Judgement struct {
	Quality Quality `yaml:"-"`
	Range   float64 `yaml:"range"`
	Score   int     `yaml:"score"`
	Energy  float64 `yaml:"energy"`
}
