// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"

	"github.com/danielhkuo/apportion/apportionment"
)

// Tie-break policy names
const (
	TieBreakLot   = "lot"
	TieBreakVotes = "votes"
)

// Output format names
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Input document

type ElectionDocument struct {
	Name            string      `json:"name,omitempty" yaml:"name,omitempty"`
	TotalSeats      int         `json:"total_seats" yaml:"total_seats"`
	TotalValidVotes uint64      `json:"total_valid_votes" yaml:"total_valid_votes"`
	Lists           []ListEntry `json:"lists" yaml:"lists"`
	Draws           []Draw      `json:"draws,omitempty" yaml:"draws,omitempty"`
}

type ListEntry struct {
	Number    int    `json:"number" yaml:"number"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	VotesCast uint64 `json:"votes_cast" yaml:"votes_cast"`
}

// Draw is the outcome of a lot drawn outside the engine for one residual seat.
type Draw struct {
	Seat int `json:"seat" yaml:"seat"`
	List int `json:"list" yaml:"list"`
}

// Input converts the document to engine input.
func (d ElectionDocument) Input() apportionment.Input {
	lists := make([]apportionment.List, len(d.Lists))
	for i, l := range d.Lists {
		lists[i] = apportionment.List{Number: l.Number, Name: l.Name, VotesCast: l.VotesCast}
	}
	return apportionment.Input{
		TotalSeats:      d.TotalSeats,
		TotalValidVotes: d.TotalValidVotes,
		Lists:           lists,
	}
}

// DrawMap indexes the draws by residual seat number.
func (d ElectionDocument) DrawMap() map[int]int {
	draws := make(map[int]int, len(d.Draws))
	for _, dr := range d.Draws {
		draws[dr.Seat] = dr.List
	}
	return draws
}

// TieBreaker returns the policy named by policy, applying the document's
// draws wherever the policy leaves a tie to lot.
func (d ElectionDocument) TieBreaker(policy string) (apportionment.TieBreaker, error) {
	lot := apportionment.ExternallyResolved{Draws: d.DrawMap()}
	switch policy {
	case TieBreakLot, "":
		return lot, nil
	case TieBreakVotes:
		return apportionment.ByTotalVotes{Fallback: lot}, nil
	}
	return nil, fmt.Errorf("unknown tie-break policy %q", policy)
}

// Output documents

type Report struct {
	Election    string                `json:"election,omitempty" yaml:"election,omitempty"`
	InputDigest string                `json:"input_digest" yaml:"input_digest"`
	TieBreak    string                `json:"tie_break" yaml:"tie_break"`
	Result      *apportionment.Result `json:"result" yaml:"result"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	File       string `json:"file,omitempty"`
	Seat       int    `json:"seat,omitempty"`
	Candidates []int  `json:"candidates,omitempty"`
}
