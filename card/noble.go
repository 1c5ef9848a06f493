package card

import "splendor/chips"

// NoblePoints is the score of every noble tile.
const NoblePoints = 3

// Noble is a bonus tile claimed by owning enough cards of given colors.
type Noble struct {
	ID          int
	Points      int
	Requirement [chips.NumColors]int
}

// CanGetNoble reports whether a discount profile (purchased cards per color)
// meets the noble's requirement.
func CanGetNoble(n Noble, cardChipValues [chips.NumColors]int) bool {
	for color, need := range n.Requirement {
		if cardChipValues[color] < need {
			return false
		}
	}
	return true
}
