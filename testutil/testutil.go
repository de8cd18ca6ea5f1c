// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/apportion/apportionment"
	"github.com/danielhkuo/apportion/models"
)

// FifteenSeatVotes are the votes of the reference 15-seat election.
var FifteenSeatVotes = []uint64{808, 60, 58, 57, 56, 55, 54, 52}

// Lists builds lists numbered 1..n from vote counts
func Lists(votes ...uint64) []apportionment.List {
	lists := make([]apportionment.List, len(votes))
	for i, v := range votes {
		lists[i] = apportionment.List{Number: i + 1, VotesCast: v}
	}
	return lists
}

// Election builds an input whose total valid votes is the sum of the lists
func Election(seats int, votes ...uint64) apportionment.Input {
	var total uint64
	for _, v := range votes {
		total += v
	}
	return apportionment.Input{
		TotalSeats:      seats,
		TotalValidVotes: total,
		Lists:           Lists(votes...),
	}
}

// FifteenSeatElection returns the reference election: quota 80, ten full
// seats for list 1 and five residual seats.
func FifteenSeatElection() apportionment.Input {
	return Election(15, FifteenSeatVotes...)
}

// Document converts an input back to its document form
func Document(name string, in apportionment.Input, draws ...models.Draw) models.ElectionDocument {
	doc := models.ElectionDocument{
		Name:            name,
		TotalSeats:      in.TotalSeats,
		TotalValidVotes: in.TotalValidVotes,
		Draws:           draws,
	}
	for _, l := range in.Lists {
		doc.Lists = append(doc.Lists, models.ListEntry{Number: l.Number, Name: l.Name, VotesCast: l.VotesCast})
	}
	return doc
}

// WriteFile writes content to name inside a per-test temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// AssertSeatTotal checks that the final standing distributes exactly the total seats
func AssertSeatTotal(t *testing.T, res *apportionment.Result) {
	t.Helper()

	sum := 0
	for _, s := range res.FinalStanding {
		if s.TotalSeats != s.FullSeats+s.ResidualSeats {
			t.Errorf("list %d: total %d != full %d + residual %d", s.ListNumber, s.TotalSeats, s.FullSeats, s.ResidualSeats)
		}
		sum += s.TotalSeats
	}
	if sum != res.TotalSeats {
		t.Errorf("Expected %d seats assigned, got %d", res.TotalSeats, sum)
	}
}

// AssertTrace checks that there is one step per residual seat, numbered from 1
func AssertTrace(t *testing.T, res *apportionment.Result) {
	t.Helper()

	if len(res.Steps) != res.ResidualSeatsTotal {
		t.Fatalf("Expected %d steps, got %d", res.ResidualSeatsTotal, len(res.Steps))
	}
	for i, step := range res.Steps {
		if step.ResidualSeatNumber != i+1 {
			t.Errorf("step %d has residual seat number %d", i, step.ResidualSeatNumber)
		}
		if len(step.StandingAfter) != len(res.FinalStanding) {
			t.Errorf("step %d snapshot has %d lists, want %d", i+1, len(step.StandingAfter), len(res.FinalStanding))
		}
	}
}
