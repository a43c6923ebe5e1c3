package domain

// Hint is a single forced placement: the cell has exactly one
// candidate left.
type Hint struct {
	At      Spot   `json:"at"`
	Digit   Digit  `json:"digit"`
	Message string `json:"message,omitempty"`
}

// Puzzle is a generated Sudoku: the carved givens together with the
// filled grid they were carved from.
type Puzzle struct {
	Seed       int64
	Difficulty Difficulty
	Givens     Grid
	Solution   Grid
}
