// Package cooccur reduces a schedule snapshot to a symmetric player × player
// matrix of "shared a team in at least one round".
// This is part of the Functional Core - no I/O, only pure functions.
package cooccur

import (
	"errors"
	"fmt"
)

// ErrRaggedSnapshot indicates snapshot rows of differing lengths.
var ErrRaggedSnapshot = errors.New("cooccur: all snapshot rows must have the same length")

// Matrix is the co-occurrence result. It keeps, for every ordered pair, the
// rounds in which the pair shared a team.
type Matrix struct {
	size   int
	rounds int
	shared []bool // [i][j][round], flattened
}

// Compute builds the matrix from a snapshot of player rows × round columns.
//
// Each round is handled on its own: players are grouped by team and every
// ordered pair inside a group (i == j included) is marked for that round.
// Met is the OR across rounds. Cost is O(rounds × players²).
func Compute(snapshot [][]int) (*Matrix, error) {
	size := len(snapshot)
	rounds := 0
	if size > 0 {
		rounds = len(snapshot[0])
	}
	for i, row := range snapshot {
		if len(row) != rounds {
			return nil, fmt.Errorf("%w: row %d has %d rounds, want %d", ErrRaggedSnapshot, i, len(row), rounds)
		}
	}

	m := &Matrix{
		size:   size,
		rounds: rounds,
		shared: make([]bool, size*size*rounds),
	}
	for r := 0; r < rounds; r++ {
		groups := make(map[int][]int)
		for p := 0; p < size; p++ {
			team := snapshot[p][r]
			groups[team] = append(groups[team], p)
		}
		for _, members := range groups {
			for _, i := range members {
				for _, j := range members {
					m.shared[m.index(i, j, r)] = true
				}
			}
		}
	}
	return m, nil
}

// Size returns the number of players.
func (m *Matrix) Size() int { return m.size }

// Rounds returns the number of rounds the matrix was computed from.
func (m *Matrix) Rounds() int { return m.rounds }

// Met reports whether players i and j shared a team in any round. A player
// always meets themself; out of range indices report false.
func (m *Matrix) Met(i, j int) bool {
	if !m.inBounds(i, j) {
		return false
	}
	if i == j {
		return true
	}
	for r := 0; r < m.rounds; r++ {
		if m.shared[m.index(i, j, r)] {
			return true
		}
	}
	return false
}

// MetInRound reports whether players i and j shared a team in round r.
func (m *Matrix) MetInRound(i, j, r int) bool {
	if !m.inBounds(i, j) || r < 0 || r >= m.rounds {
		return false
	}
	return m.shared[m.index(i, j, r)]
}

// Pattern returns the per-round flags for the pair (i, j).
func (m *Matrix) Pattern(i, j int) []bool {
	if !m.inBounds(i, j) {
		return nil
	}
	out := make([]bool, m.rounds)
	copy(out, m.shared[m.index(i, j, 0):m.index(i, j, 0)+m.rounds])
	return out
}

// Bools returns the plain Met matrix.
func (m *Matrix) Bools() [][]bool {
	out := make([][]bool, m.size)
	for i := range out {
		out[i] = make([]bool, m.size)
		for j := range out[i] {
			out[i][j] = m.Met(i, j)
		}
	}
	return out
}

func (m *Matrix) index(i, j, r int) int {
	return (i*m.size+j)*m.rounds + r
}

func (m *Matrix) inBounds(i, j int) bool {
	return i >= 0 && i < m.size && j >= 0 && j < m.size
}
