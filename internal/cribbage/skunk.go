package cribbage

// Skunk lines are absolute loser scores: a loser who fails to reach the line
// is skunked. The double-skunk tier takes precedence over the plain skunk.
const (
	DoubleSkunkLine = 61
	SkunkLine       = 91
	WinningScore    = 121
)

// SkunkClass is the margin tier of a single game.
type SkunkClass int

const (
	NoSkunk SkunkClass = iota
	Skunk
	DoubleSkunk
)

func (c SkunkClass) String() string {
	switch c {
	case Skunk:
		return "skunk"
	case DoubleSkunk:
		return "double skunk"
	default:
		return "none"
	}
}

// ClassifyLoss maps a loser score onto its skunk tier.
func ClassifyLoss(loserScore int) SkunkClass {
	switch {
	case loserScore < DoubleSkunkLine:
		return DoubleSkunk
	case loserScore < SkunkLine:
		return Skunk
	default:
		return NoSkunk
	}
}
