// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fraction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, n, d uint64) Fraction {
	t.Helper()
	f, err := New(n, d)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		n, d uint64
		want Fraction
	}{
		{"quota keeps seat denominator", 1200, 15, Fraction{80, 0, 15}},
		{"average", 808, 12, Fraction{67, 4, 12}},
		{"integer", 7, 1, Fraction{7, 0, 1}},
		{"proper", 3, 4, Fraction{0, 3, 4}},
		{"zero", 0, 9, Fraction{0, 0, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.n, tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := New(5, 0)
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Fraction
		want int
	}{
		{"different wholes", mustNew(t, 808, 12), mustNew(t, 58, 1), 1},
		{"cross denominators", mustNew(t, 1, 3), mustNew(t, 1, 2), -1},
		{"equal across denominators", mustNew(t, 2, 4), mustNew(t, 3, 6), 0},
		{"integer vs unreduced zero fraction", FromInt(80), mustNew(t, 1200, 15), 0},
		{"tiny difference", mustNew(t, 1000000, 1000001), mustNew(t, 999999, 1000000), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestAddSub(t *testing.T) {
	quota := mustNew(t, 1200, 15)

	full, err := quota.MulInt(10)
	require.NoError(t, err)

	rem, err := FromInt(808).Sub(full)
	require.NoError(t, err)
	assert.Equal(t, Fraction{8, 0, 15}, rem)

	back, err := rem.Add(full)
	require.NoError(t, err)
	assert.True(t, back.Equal(FromInt(808)))

	sum, err := mustNew(t, 1, 3).Add(mustNew(t, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, Fraction{0, 5, 6}, sum)

	carry, err := mustNew(t, 2, 3).Add(mustNew(t, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, Fraction{1, 1, 3}, carry)
}

func TestSubNegative(t *testing.T) {
	_, err := FromInt(3).Sub(mustNew(t, 7, 2))
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = Fraction{}.Sub(FromInt(1))
	assert.ErrorIs(t, err, ErrArithmetic, "zero denominator operand")
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		name  string
		votes uint64
		quota Fraction
		want  uint64
	}{
		{"whole quota", 808, mustNew(t, 1200, 15), 10},
		{"below quota", 60, mustNew(t, 1200, 15), 0},
		{"exactly at quota", 80, mustNew(t, 1200, 15), 1},
		{"fractional quota", 101, mustNew(t, 1001, 10), 1},
		{"one below fractional quota", 100, mustNew(t, 1001, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FloorDiv(tt.votes, tt.quota)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FloorDiv(10, mustNew(t, 0, 5))
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestNextAverage(t *testing.T) {
	assert.Equal(t, Fraction{67, 4, 12}, NextAverage(808, 11))
	assert.Equal(t, Fraction{58, 0, 1}, NextAverage(58, 0))
	assert.Equal(t, "29 0/2", NextAverage(58, 1).String())
}

func TestMulRatio(t *testing.T) {
	// three quarters of a quota of 80
	th, err := mustNew(t, 1200, 15).MulRatio(3, 4)
	require.NoError(t, err)
	assert.True(t, th.Equal(FromInt(60)))
	assert.Equal(t, uint64(60), th.Whole)

	_, err = FromInt(1).MulRatio(1, 0)
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestOverflow(t *testing.T) {
	_, err := FromInt(math.MaxUint64).MulInt(2)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = FromInt(math.MaxUint64).Add(FromInt(1))
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestString(t *testing.T) {
	assert.Equal(t, "80 0/15", mustNew(t, 1200, 15).String())
	assert.Equal(t, "67 4/12", mustNew(t, 808, 12).String())
	assert.Equal(t, "12", FromInt(12).String())
}
