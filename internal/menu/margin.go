package menu

// MarginTier classifies a dish's profitability band. The tier drives the
// badge's fill color and category label during rendering.
type MarginTier int

const (
	MarginLow MarginTier = iota
	MarginMedium
	MarginHigh
)

// Tier thresholds are inclusive lower bounds: 75 and above is high,
// 65 through 74 is medium, everything below 65 is low.
const (
	highMarginFloor   = 75
	mediumMarginFloor = 65
)

// ClassifyMargin maps a margin percentage to its tier.
func ClassifyMargin(percentage int) MarginTier {
	switch {
	case percentage >= highMarginFloor:
		return MarginHigh
	case percentage >= mediumMarginFloor:
		return MarginMedium
	default:
		return MarginLow
	}
}

// Label returns the category text shown inside the badge.
func (t MarginTier) Label() string {
	switch t {
	case MarginHigh:
		return "High Margin Item"
	case MarginMedium:
		return "Med. Margin Item"
	default:
		return "Low Margin Item"
	}
}

// String returns a short identifier for logs and tool output.
func (t MarginTier) String() string {
	switch t {
	case MarginHigh:
		return "high"
	case MarginMedium:
		return "medium"
	default:
		return "low"
	}
}
