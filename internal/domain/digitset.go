package domain

import "math/bits"

// DigitSet is a set of digits 1..9 packed into a bitmask. The zero
// value is the empty set.
type DigitSet uint16

// AllDigits holds every digit 1..9.
const AllDigits DigitSet = 0x3FE

// Add returns s with d included.
func (s DigitSet) Add(d Digit) DigitSet { return s | 1<<d }

// Has reports whether d is in s.
func (s DigitSet) Has(d Digit) bool { return s&(1<<d) != 0 }

// Union returns the digits found in s or t.
func (s DigitSet) Union(t DigitSet) DigitSet { return s | t }

// Without returns the digits of s that are not in t.
func (s DigitSet) Without(t DigitSet) DigitSet { return s &^ t }

// Len returns the number of digits in s.
func (s DigitSet) Len() int { return bits.OnesCount16(uint16(s)) }

// Digits lists the members of s in ascending order.
func (s DigitSet) Digits() []Digit {
	out := make([]Digit, 0, s.Len())
	for d := Digit(1); d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
