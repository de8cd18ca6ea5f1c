// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fraction implements the exact mixed-fraction value used for every
quantity that can decide a seat.

# Representation

A Fraction is whole + numerator/denominator:

	q, _ := fraction.New(1200, 15) // 80 0/15
	a := fraction.NextAverage(808, 11) // 67 4/12

Denominators are kept as constructed and are not normalized, so a quota keeps
the seat count as its denominator and an average keeps the divisor. This is
what auditors expect to see printed ("67 4/12").

# Comparison

Compare orders two fractions exactly by cross-multiplication. Floating point is
never used.

# Errors

ErrArithmetic is returned for a zero denominator, a subtraction that would go
below zero, or a result that does not fit in 64 bits. Each of these points to a
defect in the caller, not to bad election data.
*/
package fraction
