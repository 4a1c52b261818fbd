// Package ordinate defines the extended real-valued coordinate used
// throughout the temporal-hierarchy engine: a single scalar supporting the
// arithmetic the space-graph algebra needs, plus the two signed infinities
// an unbounded interval requires.
package ordinate

import (
	"errors"
	"math"
)

// Epsilon is the default tolerance used by Equal and the comparison helpers
// in sibling packages. Mirrors the teacher's DefaultEpsilon convention.
const Epsilon = 1.0 / (2 * 192000.0)

// Errors returned by arithmetic operations that cannot produce a finite
// result.
var (
	ErrDivideByZero = errors.New("ordinate: divide by zero")
	ErrNonFinite    = errors.New("ordinate: operation produced a non-finite result from finite operands")
)

// Ordinate is a total-ordered extended real value.
type Ordinate float64

// Zero, One, PosInf and NegInf are the distinguished values the algebra
// refers to by name.
const (
	Zero Ordinate = 0
	One  Ordinate = 1
)

var (
	PosInf = Ordinate(math.Inf(1))
	NegInf = Ordinate(math.Inf(-1))
)

// IsFinite reports whether o is neither of the two infinities nor NaN.
func (o Ordinate) IsFinite() bool {
	return !math.IsInf(float64(o), 0) && !math.IsNaN(float64(o))
}

// IsPosInf reports whether o is the positive infinity sentinel.
func (o Ordinate) IsPosInf() bool { return math.IsInf(float64(o), 1) }

// IsNegInf reports whether o is the negative infinity sentinel.
func (o Ordinate) IsNegInf() bool { return math.IsInf(float64(o), -1) }

// Add returns o + other.
func (o Ordinate) Add(other Ordinate) Ordinate { return o + other }

// Sub returns o - other.
func (o Ordinate) Sub(other Ordinate) Ordinate { return o - other }

// Neg returns -o.
func (o Ordinate) Neg() Ordinate { return -o }

// Mul returns o * other, reporting ErrNonFinite if both operands were
// finite but the product overflowed to infinity.
func (o Ordinate) Mul(other Ordinate) (Ordinate, error) {
	result := o * other
	if o.IsFinite() && other.IsFinite() && !result.IsFinite() {
		return 0, ErrNonFinite
	}
	return result, nil
}

// Div returns o / other. Division by a finite zero is a structural error.
func (o Ordinate) Div(other Ordinate) (Ordinate, error) {
	if other == 0 {
		return 0, ErrDivideByZero
	}
	result := o / other
	if o.IsFinite() && other.IsFinite() && !result.IsFinite() {
		return 0, ErrNonFinite
	}
	return result, nil
}

// Cmp returns -1, 0 or 1 as o is less than, equal to, or greater than other.
func (o Ordinate) Cmp(other Ordinate) int {
	switch {
	case o < other:
		return -1
	case o > other:
		return 1
	default:
		return 0
	}
}

// Equal reports whether o and other are within Epsilon of each other.
// Infinities only equal themselves.
func (o Ordinate) Equal(other Ordinate) bool {
	if o.IsPosInf() || other.IsPosInf() || o.IsNegInf() || other.IsNegInf() {
		return o == other
	}
	return math.Abs(float64(o-other)) <= Epsilon
}

// Min returns the lesser of a and b.
func Min(a, b Ordinate) Ordinate {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b Ordinate) Ordinate {
	if a > b {
		return a
	}
	return b
}
