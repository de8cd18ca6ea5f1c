// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import (
	"slices"

	"github.com/danielhkuo/apportion/fraction"
)

// Tie is presented to a TieBreaker when more lists share the decisive value
// than there are seats left in the phase.
type Tie struct {
	Seat       int
	Method     Method
	Candidates []int // ascending list numbers
	Value      fraction.Fraction
	Standings  []ListStanding
}

// TieBreaker picks one of the tied candidates or returns a *TieError.
type TieBreaker interface {
	Resolve(t Tie) (int, error)
}

// TieBreakerFunc adapts a function to TieBreaker.
type TieBreakerFunc func(t Tie) (int, error)

func (f TieBreakerFunc) Resolve(t Tie) (int, error) { return f(t) }

// Unresolved never decides a tie.
var Unresolved TieBreaker = TieBreakerFunc(func(t Tie) (int, error) {
	return 0, t.unresolved()
})

// ExternallyResolved applies lot draws made outside the engine, keyed by
// residual seat number. A draw naming a list that is not a candidate is
// ignored.
type ExternallyResolved struct {
	Draws map[int]int
}

func (p ExternallyResolved) Resolve(t Tie) (int, error) {
	if list, ok := p.Draws[t.Seat]; ok && slices.Contains(t.Candidates, list) {
		return list, nil
	}
	return 0, t.unresolved()
}

// ByTotalVotes prefers the candidate with the most votes cast. Candidates
// that also tie on votes go to Fallback, or stay unresolved without one.
type ByTotalVotes struct {
	Fallback TieBreaker
}

func (p ByTotalVotes) Resolve(t Tie) (int, error) {
	votes := make(map[int]uint64, len(t.Standings))
	for _, s := range t.Standings {
		votes[s.ListNumber] = s.VotesCast
	}

	var best []int
	var most uint64
	for _, c := range t.Candidates {
		switch v := votes[c]; {
		case len(best) == 0 || v > most:
			best, most = []int{c}, v
		case v == most:
			best = append(best, c)
		}
	}
	if len(best) == 1 {
		return best[0], nil
	}

	if p.Fallback == nil {
		t.Candidates = best
		return 0, t.unresolved()
	}
	narrowed := t
	narrowed.Candidates = best
	return p.Fallback.Resolve(narrowed)
}

func (t Tie) unresolved() *TieError {
	return &TieError{
		Seat:       t.Seat,
		Method:     t.Method,
		Candidates: slices.Clone(t.Candidates),
		Value:      t.Value,
	}
}
