package chips

import (
	"fmt"
	"strings"
)

// Color identifies a chip field. The five gem colors come first, Gold is the wildcard.
type Color int

const (
	White Color = iota
	Blue
	Green
	Red
	Black
	Gold
)

// NumColors is the number of gem colors, gold excluded.
const NumColors = 5

const (
	fieldBits = 3
	fieldMask = 1<<fieldBits - 1

	// MaxField is the largest count a single packed field can hold.
	MaxField = fieldMask
)

var colorNames = [...]string{"white", "blue", "green", "red", "black", "gold"}
var colorSymbols = [...]string{"W", "U", "G", "R", "K", "*"}

func (c Color) String() string {
	if c < White || c > Gold {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// Colors lists the gem colors in field order.
func Colors() []Color {
	return []Color{White, Blue, Green, Red, Black}
}

// Chips packs six 3-bit counters into one integer: color i occupies bits
// [3i, 3i+3) and gold occupies bits [15, 18). The same layout is used for
// held chips, effective buying power and card costs.
type Chips uint32

func shift(c Color) uint {
	return uint(c) * fieldBits
}

// Of builds a Chips value from per-color counts and a gold count.
func Of(white, blue, green, red, black, gold int) Chips {
	return FromCounts([NumColors + 1]int{white, blue, green, red, black, gold})
}

// FromCounts packs counts indexed by Color.
func FromCounts(counts [NumColors + 1]int) Chips {
	var c Chips
	for i, n := range counts {
		c = c.Set(Color(i), n)
	}
	return c
}

// Get returns the count held in the field for color.
func (c Chips) Get(color Color) int {
	return int(c>>shift(color)) & fieldMask
}

// Gold returns the wildcard count.
func (c Chips) Gold() int {
	return c.Get(Gold)
}

// Set returns c with the field for color replaced by n. It panics when n does
// not fit in a field.
func (c Chips) Set(color Color, n int) Chips {
	if n < 0 || n > MaxField {
		panic(fmt.Sprintf("chips: %s count %d out of range [0,%d]", color, n, MaxField))
	}
	cleared := c &^ (fieldMask << shift(color))
	return cleared | Chips(n)<<shift(color)
}

// Add sums every field independently. A field that would exceed MaxField is
// an integrity failure and panics rather than carrying into its neighbour.
func (c Chips) Add(o Chips) Chips {
	out := c
	for color := White; color <= Gold; color++ {
		out = out.Set(color, c.Get(color)+o.Get(color))
	}
	return out
}

// Sub subtracts every field independently, panicking on underflow.
func (c Chips) Sub(o Chips) Chips {
	out := c
	for color := White; color <= Gold; color++ {
		out = out.Set(color, c.Get(color)-o.Get(color))
	}
	return out
}

// CanAdd reports whether Add would keep every field in range.
func (c Chips) CanAdd(o Chips) bool {
	for color := White; color <= Gold; color++ {
		if c.Get(color)+o.Get(color) > MaxField {
			return false
		}
	}
	return true
}

// Covers reports whether every field of c is at least the matching field of o.
func (c Chips) Covers(o Chips) bool {
	for color := White; color <= Gold; color++ {
		if c.Get(color) < o.Get(color) {
			return false
		}
	}
	return true
}

// Total is the sum of all fields, gold included.
func (c Chips) Total() int {
	total := 0
	for color := White; color <= Gold; color++ {
		total += c.Get(color)
	}
	return total
}

// Counts unpacks c into per-field counts indexed by Color.
func (c Chips) Counts() [NumColors + 1]int {
	var counts [NumColors + 1]int
	for color := White; color <= Gold; color++ {
		counts[color] = c.Get(color)
	}
	return counts
}

// String renders only the non-empty fields, e.g. "W2 R1 *1".
func (c Chips) String() string {
	if c == 0 {
		return "-"
	}
	parts := make([]string, 0, NumColors+1)
	for color := White; color <= Gold; color++ {
		if n := c.Get(color); n > 0 {
			parts = append(parts, fmt.Sprintf("%s%d", colorSymbols[color], n))
		}
	}
	return strings.Join(parts, " ")
}

// Exchange is one chip transaction between the board and a player: Take moves
// from the board to the player, GiveBack from the player to the board.
type Exchange struct {
	Take     Chips
	GiveBack Chips
}

// IsPass reports whether the exchange moves no chips at all.
func (e Exchange) IsPass() bool {
	return e.Take == 0 && e.GiveBack == 0
}

func (e Exchange) String() string {
	if e.GiveBack == 0 {
		return "+" + e.Take.String()
	}
	return fmt.Sprintf("+%s -%s", e.Take, e.GiveBack)
}
