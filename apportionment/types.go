// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import "github.com/danielhkuo/apportion/fraction"

// Seat count from which the largest-surplus regime applies.
const LargeCouncilSeats = 19

// Method names the rule that awarded a residual seat.
type Method string

const (
	LargestRemainder Method = "largest_remainder"
	LargestSurplus   Method = "largest_surplus"
	LargestAverage   Method = "largest_average"
)

// List is one participating political group.
type List struct {
	Number    int    `json:"number" yaml:"number"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	VotesCast uint64 `json:"votes_cast" yaml:"votes_cast"`
}

// Input is the validated data an apportionment run starts from.
type Input struct {
	TotalSeats      int    `json:"total_seats" yaml:"total_seats"`
	TotalValidVotes uint64 `json:"total_valid_votes" yaml:"total_valid_votes"`
	Lists           []List `json:"lists" yaml:"lists"`
}

// ListStanding is the per-list state at one point of a run.
type ListStanding struct {
	ListNumber              int               `json:"list_number" yaml:"list_number"`
	VotesCast               uint64            `json:"votes_cast" yaml:"votes_cast"`
	FullSeats               int               `json:"full_seats" yaml:"full_seats"`
	ResidualSeats           int               `json:"residual_seats" yaml:"residual_seats"`
	TotalSeats              int               `json:"total_seats" yaml:"total_seats"`
	Remainder               fraction.Fraction `json:"remainder" yaml:"remainder"`
	NextAverage             fraction.Fraction `json:"next_average" yaml:"next_average"`
	MeetsRemainderThreshold bool              `json:"meets_remainder_threshold" yaml:"meets_remainder_threshold"`
	MeetsSurplusThreshold   bool              `json:"meets_surplus_threshold" yaml:"meets_surplus_threshold"`
}

// Step records the award of one residual seat.
type Step struct {
	ResidualSeatNumber int               `json:"residual_seat_number" yaml:"residual_seat_number"`
	Method             Method            `json:"method" yaml:"method"`
	Candidates         []int             `json:"candidates" yaml:"candidates"`
	AwardedTo          int               `json:"awarded_to" yaml:"awarded_to"`
	DecisiveValue      fraction.Fraction `json:"decisive_value" yaml:"decisive_value"`
	StandingAfter      []ListStanding    `json:"standing_after" yaml:"standing_after"`
}

// Result is the published outcome of a run. It is never modified after
// Apportion returns; callers must treat its slices as read-only.
type Result struct {
	TotalSeats         int               `json:"total_seats" yaml:"total_seats"`
	FullSeatsTotal     int               `json:"full_seats_total" yaml:"full_seats_total"`
	ResidualSeatsTotal int               `json:"residual_seats_total" yaml:"residual_seats_total"`
	Quota              fraction.Fraction `json:"quota" yaml:"quota"`
	Steps              []Step            `json:"steps" yaml:"steps"`
	FinalStanding      []ListStanding    `json:"final_standing" yaml:"final_standing"`
}

// Standing returns the final standing of a list.
func (r *Result) Standing(listNumber int) (ListStanding, bool) {
	for _, s := range r.FinalStanding {
		if s.ListNumber == listNumber {
			return s, true
		}
	}
	return ListStanding{}, false
}

// Seats returns the total seats per list in input order.
func (r *Result) Seats() []int {
	seats := make([]int, len(r.FinalStanding))
	for i, s := range r.FinalStanding {
		seats[i] = s.TotalSeats
	}
	return seats
}
