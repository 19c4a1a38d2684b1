package engine

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "Empty"
	}
}

// Other returns the opposing mark. Empty maps to itself.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Board is the 3x3 grid stored row-major: index = row*3 + col.
type Board [BoardSize]Mark

// lines lists every winning triple in evaluation order: row i then column i
// for i in 0..2, then the two diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {0, 3, 6},
	{3, 4, 5}, {1, 4, 7},
	{6, 7, 8}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Evaluate reports the outcome of a board. It returns the mark owning the
// first completed line found, or (Empty, true) when all cells are occupied
// without a line, which stands for a draw. ok is false while the game is
// still open.
func Evaluate(b Board) (winner Mark, ok bool) {
	for _, ln := range lines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return a, true
		}
	}
	if b.Full() {
		return Empty, true
	}
	return Empty, false
}

// Full returns true if no cell is Empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of all Empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, m := range b {
		if m == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Count returns how many cells hold the given mark.
func (b Board) Count(m Mark) int {
	n := 0
	for _, c := range b {
		if c == m {
			n++
		}
	}
	return n
}
