// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fraction

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrArithmetic = errors.New("arithmetic error")

// Fraction is an immutable non-negative mixed fraction.
// Numerator < Denominator always holds for values built by this package.
type Fraction struct {
	Whole       uint64 `json:"whole" yaml:"whole"`
	Numerator   uint64 `json:"numerator" yaml:"numerator"`
	Denominator uint64 `json:"denominator" yaml:"denominator"`
}

// New returns n/d in mixed form, keeping d as the denominator.
func New(n, d uint64) (Fraction, error) {
	if d == 0 {
		return Fraction{}, fmt.Errorf("%w: zero denominator in %d/0", ErrArithmetic, n)
	}
	return Fraction{Whole: n / d, Numerator: n % d, Denominator: d}, nil
}

// FromInt returns n as a pure integer (denominator 1).
func FromInt(n uint64) Fraction {
	return Fraction{Whole: n, Denominator: 1}
}

// NextAverage returns votes / (held + 1), the average a list would reach with
// one more seat.
func NextAverage(votes, held uint64) Fraction {
	f, _ := New(votes, held+1)
	return f
}

// FloorDiv returns floor(votes / q). q must be positive.
func FloorDiv(votes uint64, q Fraction) (uint64, error) {
	num, den, err := q.parts()
	if err != nil {
		return 0, err
	}
	if num.Sign() == 0 {
		return 0, fmt.Errorf("%w: division by zero quota", ErrArithmetic)
	}
	// votes / (num/den) = votes*den / num
	n := new(big.Int).Mul(new(big.Int).SetUint64(votes), den)
	n.Quo(n, num)
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %d / %s overflows", ErrArithmetic, votes, q)
	}
	return n.Uint64(), nil
}

// Add returns f + o.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	return f.combine(o, false)
}

// Sub returns f - o. Subtracting a larger value is an error.
func (f Fraction) Sub(o Fraction) (Fraction, error) {
	return f.combine(o, true)
}

// MulInt returns f * k.
func (f Fraction) MulInt(k uint64) (Fraction, error) {
	num, den, err := f.parts()
	if err != nil {
		return Fraction{}, err
	}
	num.Mul(num, new(big.Int).SetUint64(k))
	return fromBig(num, den)
}

// MulRatio returns f * n/d with denominator f.Denominator*d.
func (f Fraction) MulRatio(n, d uint64) (Fraction, error) {
	if d == 0 {
		return Fraction{}, fmt.Errorf("%w: zero denominator in ratio %d/0", ErrArithmetic, n)
	}
	num, den, err := f.parts()
	if err != nil {
		return Fraction{}, err
	}
	num.Mul(num, new(big.Int).SetUint64(n))
	den.Mul(den, new(big.Int).SetUint64(d))
	return fromBig(num, den)
}

// Compare returns -1, 0 or +1 as f is less than, equal to or greater than o.
// Fractions that are not valid (zero denominator) compare as their whole part.
func (f Fraction) Compare(o Fraction) int {
	if f.Whole != o.Whole {
		if f.Whole < o.Whole {
			return -1
		}
		return 1
	}
	if f.Denominator == 0 || o.Denominator == 0 {
		return 0
	}
	// Numerator < Denominator on both sides, so only the fractional parts
	// remain to be ordered: fN/fD vs oN/oD.
	l := new(big.Int).Mul(new(big.Int).SetUint64(f.Numerator), new(big.Int).SetUint64(o.Denominator))
	r := new(big.Int).Mul(new(big.Int).SetUint64(o.Numerator), new(big.Int).SetUint64(f.Denominator))
	return l.Cmp(r)
}

func (f Fraction) Equal(o Fraction) bool {
	return f.Compare(o) == 0
}

func (f Fraction) Less(o Fraction) bool {
	return f.Compare(o) < 0
}

func (f Fraction) IsZero() bool {
	return f.Whole == 0 && f.Numerator == 0
}

// String renders the mixed form, e.g. "67 4/12" or "80 0/15".
// Pure integers (denominator 1) render without a fractional part.
func (f Fraction) String() string {
	if f.Denominator <= 1 {
		return fmt.Sprintf("%d", f.Whole)
	}
	return fmt.Sprintf("%d %d/%d", f.Whole, f.Numerator, f.Denominator)
}

// parts returns the improper numerator and the denominator.
func (f Fraction) parts() (*big.Int, *big.Int, error) {
	if f.Denominator == 0 {
		return nil, nil, fmt.Errorf("%w: zero denominator", ErrArithmetic)
	}
	den := new(big.Int).SetUint64(f.Denominator)
	num := new(big.Int).Mul(new(big.Int).SetUint64(f.Whole), den)
	num.Add(num, new(big.Int).SetUint64(f.Numerator))
	return num, den, nil
}

func (f Fraction) combine(o Fraction, subtract bool) (Fraction, error) {
	fn, fd, err := f.parts()
	if err != nil {
		return Fraction{}, err
	}
	on, od, err := o.parts()
	if err != nil {
		return Fraction{}, err
	}

	// Keep the shared denominator when there is one; integers adopt the
	// other side's denominator.
	var den *big.Int
	switch {
	case fd.Cmp(od) == 0:
		den = fd
	case od.IsInt64() && od.Int64() == 1:
		den = fd
		on.Mul(on, fd)
	case fd.IsInt64() && fd.Int64() == 1:
		den = od
		fn.Mul(fn, od)
	default:
		den = new(big.Int).Mul(fd, od)
		fn.Mul(fn, od)
		on.Mul(on, fd)
	}

	if subtract {
		if fn.Cmp(on) < 0 {
			return Fraction{}, fmt.Errorf("%w: %s - %s is negative", ErrArithmetic, f, o)
		}
		return fromBig(fn.Sub(fn, on), den)
	}
	return fromBig(fn.Add(fn, on), den)
}

func fromBig(num, den *big.Int) (Fraction, error) {
	if !den.IsUint64() || den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("%w: denominator %s out of range", ErrArithmetic, den)
	}
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if !whole.IsUint64() {
		return Fraction{}, fmt.Errorf("%w: %s/%s overflows", ErrArithmetic, num, den)
	}
	return Fraction{Whole: whole.Uint64(), Numerator: rem.Uint64(), Denominator: den.Uint64()}, nil
}
