package domain

import (
	"fmt"
	"strings"
)

// Difficulty labels how many givens a generated puzzle keeps.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

var difficultyNames = [...]string{"easy", "medium", "hard", "expert"}

func (d Difficulty) String() string {
	if d < Easy || d > Expert {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty maps a name to its Difficulty. The empty string
// means Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Medium, nil
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return Medium, fmt.Errorf("sudoku: unknown difficulty %q", s)
	}
}
