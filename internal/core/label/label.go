// Package label builds display labels for schedule rows and columns.
// This is part of the Functional Core - no I/O, only pure functions.
package label

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidBase indicates a radix below 2.
	ErrInvalidBase = errors.New("label: base must be at least 2")
	// ErrNegativeIndex indicates an index below 0.
	ErrNegativeIndex = errors.New("label: index must not be negative")
)

// Separator joins digit groups.
const Separator = "_"

// Label renders index in the given base as fixed-width digit groups.
//
// The group count is ceil(log_base(maxExclusive)) with a minimum of one, so all
// labels for the same (maxExclusive, base) pair share a width. Each group is
// zero-padded to ceil(log10(base)) characters. An index that needs more groups
// than that keeps all of its digits.
func Label(index, maxExclusive, base int) (string, error) {
	if base < 2 {
		return "", fmt.Errorf("%w (got %d)", ErrInvalidBase, base)
	}
	if index < 0 {
		return "", fmt.Errorf("%w (got %d)", ErrNegativeIndex, index)
	}

	var digits []int
	for n := index; n > 0; n /= base {
		digits = append(digits, n%base)
	}
	for len(digits) < groupCount(maxExclusive, base) {
		digits = append(digits, 0)
	}

	width := DigitWidth(base)
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[len(digits)-1-i] = fmt.Sprintf("%0*d", width, d)
	}
	return strings.Join(parts, Separator), nil
}

// DigitWidth returns ceil(log10(n)) with a minimum of 1: the number of
// decimal characters needed for any value in [0, n).
func DigitWidth(n int) int {
	width := 1
	for limit := 10; limit < n; limit *= 10 {
		width++
		if limit > math.MaxInt/10 {
			break
		}
	}
	return width
}

// groupCount returns the smallest k >= 1 with base^k >= maxExclusive.
func groupCount(maxExclusive, base int) int {
	k := 1
	for p := base; p < maxExclusive; p *= base {
		k++
		if p > math.MaxInt/base {
			break
		}
	}
	return k
}

// PlayerHeader returns the row header for player i, e.g. "Player 03 | 0_1_1".
// The radix label uses the team count as base.
func PlayerHeader(i, players, teams int) (string, error) {
	radix, err := Label(i, players, teams)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Player %0*d | %s", DigitWidth(players), i, radix), nil
}

// RoundHeader returns the 1-based column header for round r.
func RoundHeader(r int) string {
	return fmt.Sprintf("Round %d", r+1)
}
