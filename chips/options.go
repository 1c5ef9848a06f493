package chips

// MaxHeld is the most chips a player may hold at the end of a turn.
const MaxHeld = 10

const (
	maxDistinctTake = 3
	// a double take of one color needs at least this many left on the board
	minForDouble = 4
)

// TakingOptions enumerates every legal chip-taking exchange for a player
// holding player when the board supply is board. A take is either one chip of
// up to three distinct colors or two chips of a color with at least four on the
// board; takes pushing the hand past MaxHeld come paired with every distinct
// give-back restoring the cap. When nothing can be taken the result is a
// single pass so the menu is never empty.
func TakingOptions(board, player Chips) []Exchange {
	available := make([]Color, 0, NumColors)
	for _, c := range Colors() {
		if board.Get(c) > 0 {
			available = append(available, c)
		}
	}

	takes := combinations(available, min(maxDistinctTake, len(available)))
	for _, c := range Colors() {
		if board.Get(c) >= minForDouble {
			takes = append(takes, Chips(0).Set(c, 2))
		}
	}

	options := make([]Exchange, 0, len(takes))
	seen := make(map[Chips]bool)
	for _, take := range takes {
		if take == 0 || !player.CanAdd(take) {
			continue
		}
		options = appendSettled(options, seen, player, take)
	}
	if len(options) == 0 {
		return []Exchange{{}}
	}
	return options
}

// ReserveOptions enumerates the chip side of a reservation: reserving without
// chips is always possible, and one gold chip may be taken while the board has
// any left.
func ReserveOptions(board, player Chips) []Exchange {
	options := []Exchange{{}}
	if board.Gold() == 0 {
		return options
	}
	gold := Chips(0).Set(Gold, 1)
	if !player.CanAdd(gold) {
		return options
	}
	seen := map[Chips]bool{player: true}
	return appendSettled(options, seen, player, gold)
}

// appendSettled adds take to options, expanding it into one exchange per
// distinct resulting hand when the hand cap forces a give-back.
func appendSettled(options []Exchange, seen map[Chips]bool, player, take Chips) []Exchange {
	after := player.Add(take)
	excess := after.Total() - MaxHeld
	if excess <= 0 {
		if !seen[after] {
			seen[after] = true
			options = append(options, Exchange{Take: take})
		}
		return options
	}
	for _, giveBack := range multisets(after, excess) {
		hand := after.Sub(giveBack)
		if seen[hand] {
			continue
		}
		seen[hand] = true
		options = append(options, Exchange{Take: take, GiveBack: giveBack})
	}
	return options
}

// combinations returns one chip of each color for every k-subset of colors,
// in field order.
func combinations(colors []Color, k int) []Chips {
	if k == 0 {
		return nil
	}
	var out []Chips
	var walk func(start int, acc Chips, left int)
	walk = func(start int, acc Chips, left int) {
		if left == 0 {
			out = append(out, acc)
			return
		}
		for i := start; i <= len(colors)-left; i++ {
			walk(i+1, acc.Set(colors[i], 1), left-1)
		}
	}
	walk(0, 0, k)
	return out
}

// multisets returns every way of choosing n chips out of hand, gold included,
// in lexicographic field order.
func multisets(hand Chips, n int) []Chips {
	var out []Chips
	var walk func(color Color, acc Chips, left int)
	walk = func(color Color, acc Chips, left int) {
		if left == 0 {
			out = append(out, acc)
			return
		}
		if color > Gold {
			return
		}
		for k := min(hand.Get(color), left); k >= 0; k-- {
			walk(color+1, acc.Set(color, k), left-k)
		}
	}
	walk(White, 0, n)
	return out
}
