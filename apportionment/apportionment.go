// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/danielhkuo/apportion/fraction"
)

// Engine runs apportionments with a fixed tie-break policy and logger.
type Engine struct {
	ties TieBreaker
	log  *zap.Logger
}

type Option func(*Engine)

// WithTieBreaker sets the policy for ties. The default leaves every tie
// unresolved.
func WithTieBreaker(t TieBreaker) Option {
	return func(e *Engine) {
		if t != nil {
			e.ties = t
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{ties: Unresolved, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type state int

const (
	stateInit state = iota
	stateFullSeats
	stateThreshold
	stateAverages
	stateDone
)

func (s state) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateFullSeats:
		return "full_seats"
	case stateThreshold:
		return "threshold_phase"
	case stateAverages:
		return "averages_phase"
	case stateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// run owns all mutable standings of one apportionment.
type run struct {
	ties TieBreaker
	log  *zap.Logger

	totalSeats         int
	quota              fraction.Fraction
	fullSeatsTotal     int
	residualSeatsTotal int

	standings []ListStanding
	index     map[int]int
	steps     []Step
}

// Apportion validates the input and computes the seat assignment.
func (e *Engine) Apportion(in Input) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	r := &run{
		ties:       e.ties,
		totalSeats: in.TotalSeats,
		log: e.log.With(
			zap.Int("total_seats", in.TotalSeats),
			zap.Uint64("total_valid_votes", in.TotalValidVotes),
		),
	}

	for s := stateInit; s != stateDone; {
		next, err := r.advance(s, in)
		if err != nil {
			r.log.Debug("apportionment aborted", zap.Stringer("state", s), zap.Error(err))
			return nil, err
		}
		r.log.Debug("phase transition",
			zap.Stringer("from", s),
			zap.Stringer("to", next),
			zap.Int("residual_seats_left", r.residualSeatsLeft()),
		)
		s = next
	}
	return r.publish()
}

func (r *run) advance(s state, in Input) (state, error) {
	switch s {
	case stateInit:
		return stateFullSeats, r.init(in)

	case stateFullSeats:
		if err := r.allocateFullSeats(); err != nil {
			return s, err
		}
		r.log.Debug("full seats allocated",
			zap.Stringer("quota", r.quota),
			zap.Int("full_seats_total", r.fullSeatsTotal),
			zap.Int("residual_seats_total", r.residualSeatsTotal),
		)
		if r.residualSeatsTotal == 0 {
			return stateDone, nil
		}
		return stateThreshold, nil

	case stateThreshold:
		var err error
		if r.largeCouncil() {
			err = r.allocateLargestSurpluses()
		} else {
			err = r.allocateLargestRemainders()
		}
		return stateAverages, err

	case stateAverages:
		return stateDone, r.allocateLargestAverages(!r.largeCouncil())
	}
	return s, invariant("unexpected state %s", s)
}

func (r *run) init(in Input) error {
	quota, err := Quota(in.TotalValidVotes, in.TotalSeats)
	if err != nil {
		return fmt.Errorf("%w: quota: %w", ErrInvariantViolation, err)
	}
	r.quota = quota

	r.standings = make([]ListStanding, len(in.Lists))
	r.index = make(map[int]int, len(in.Lists))
	for i, l := range in.Lists {
		r.standings[i] = ListStanding{ListNumber: l.Number, VotesCast: l.VotesCast}
		r.index[l.Number] = i
	}
	return nil
}

func (r *run) largeCouncil() bool {
	return r.totalSeats >= LargeCouncilSeats
}

func (r *run) residualSeatsLeft() int {
	return r.residualSeatsTotal - len(r.steps)
}

// highest returns the largest value among eligible lists and the ascending
// numbers of every list holding it.
func (r *run) highest(eligible func(*ListStanding) bool, value func(*ListStanding) fraction.Fraction) (fraction.Fraction, []int) {
	var best fraction.Fraction
	var candidates []int
	for i := range r.standings {
		s := &r.standings[i]
		if !eligible(s) {
			continue
		}
		v := value(s)
		switch c := v.Compare(best); {
		case len(candidates) == 0 || c > 0:
			best, candidates = v, []int{s.ListNumber}
		case c == 0:
			candidates = append(candidates, s.ListNumber)
		}
	}
	slices.Sort(candidates)
	return best, candidates
}

// choose settles which candidate receives the next seat. If every tied list
// will get a seat in this phase anyway, they go in list-number order;
// otherwise the tie-break policy decides.
func (r *run) choose(method Method, candidates []int, value fraction.Fraction) (int, error) {
	if len(candidates) <= r.residualSeatsLeft() {
		return candidates[0], nil
	}

	tie := Tie{
		Seat:       len(r.steps) + 1,
		Method:     method,
		Candidates: slices.Clone(candidates),
		Value:      value,
		Standings:  r.snapshot(),
	}
	winner, err := r.ties.Resolve(tie)
	if err != nil {
		return 0, err
	}
	if !slices.Contains(candidates, winner) {
		return 0, invariant("tie-break chose list %d, not one of %v", winner, candidates)
	}
	r.log.Debug("tie resolved",
		zap.Int("residual_seat", tie.Seat),
		zap.Ints("candidates", candidates),
		zap.Int("winner", winner),
	)
	return winner, nil
}

func (r *run) award(method Method, candidates []int, winner int, value fraction.Fraction) {
	s := &r.standings[r.index[winner]]
	s.ResidualSeats++
	s.TotalSeats++
	s.NextAverage = fraction.NextAverage(s.VotesCast, uint64(s.TotalSeats))

	r.steps = append(r.steps, Step{
		ResidualSeatNumber: len(r.steps) + 1,
		Method:             method,
		Candidates:         slices.Clone(candidates),
		AwardedTo:          winner,
		DecisiveValue:      value,
		StandingAfter:      r.snapshot(),
	})

	r.log.Debug("residual seat awarded",
		zap.Int("residual_seat", len(r.steps)),
		zap.String("method", string(method)),
		zap.Int("list", winner),
		zap.Stringer("value", value),
	)
}

func (r *run) snapshot() []ListStanding {
	return slices.Clone(r.standings)
}

func (r *run) publish() (*Result, error) {
	if len(r.steps) != r.residualSeatsTotal {
		return nil, invariant("%d steps recorded for %d residual seats", len(r.steps), r.residualSeatsTotal)
	}
	total := 0
	for _, s := range r.standings {
		if s.TotalSeats != s.FullSeats+s.ResidualSeats {
			return nil, invariant("list %d holds %d seats, want %d+%d", s.ListNumber, s.TotalSeats, s.FullSeats, s.ResidualSeats)
		}
		total += s.TotalSeats
	}
	if total != r.totalSeats {
		return nil, invariant("%d seats assigned, want %d", total, r.totalSeats)
	}

	steps := r.steps
	if steps == nil {
		steps = []Step{}
	}
	return &Result{
		TotalSeats:         r.totalSeats,
		FullSeatsTotal:     r.fullSeatsTotal,
		ResidualSeatsTotal: r.residualSeatsTotal,
		Quota:              r.quota,
		Steps:              steps,
		FinalStanding:      r.snapshot(),
	}, nil
}

// Validate rejects malformed input. Nothing is computed when it fails.
func Validate(in Input) error {
	if in.TotalSeats <= 0 {
		return &InputError{Field: "total_seats", Reason: fmt.Sprintf("must be positive, got %d", in.TotalSeats)}
	}
	if len(in.Lists) == 0 {
		return &InputError{Field: "lists", Reason: "at least one list is required"}
	}

	seen := make(map[int]bool, len(in.Lists))
	var sum uint64
	for i, l := range in.Lists {
		if l.Number <= 0 {
			return &InputError{Field: fmt.Sprintf("lists[%d].number", i), Reason: fmt.Sprintf("must be positive, got %d", l.Number)}
		}
		if seen[l.Number] {
			return &InputError{Field: fmt.Sprintf("lists[%d].number", i), Reason: fmt.Sprintf("duplicate list number %d", l.Number)}
		}
		seen[l.Number] = true

		next := sum + l.VotesCast
		if next < sum {
			return &InputError{Field: "lists", Reason: "vote total overflows"}
		}
		sum = next
	}

	if sum != in.TotalValidVotes {
		return &InputError{Field: "total_valid_votes", Reason: fmt.Sprintf("%d does not match the %d votes cast on lists", in.TotalValidVotes, sum)}
	}
	if sum == 0 {
		return &InputError{Field: "total_valid_votes", Reason: "no valid votes"}
	}
	return nil
}
