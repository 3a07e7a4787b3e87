// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"hash/fnv"
	"math"
	"math/big"

	"github.com/jorgefdezg/justbytes/radix"
)

// A Size is an exact quantity of bytes: a sign-carrying rational
// magnitude of unbounded precision. Sizes are immutable; every operation
// returns a fresh value, so a Size may be copied, compared and used
// concurrently without synchronization.
//
// The zero value is a ready-to-use 0 B.
type Size struct {
	magnitude *big.Rat
}

var zeroRat big.Rat

// rat returns the magnitude for read-only use. It must never be passed
// as the receiver of a big.Rat operation.
func (s Size) rat() *big.Rat {
	if s.magnitude == nil {
		return &zeroRat
	}
	return s.magnitude
}

// makeSize wraps m in a Size, enforcing strict mode. m must be owned by
// the caller and is not copied.
func makeSize(m *big.Rat) (Size, error) {
	if Strict() && !m.IsInt() {
		return Size{}, ErrFractionalResult
	}
	return Size{m}, nil
}

// New returns a Size of v units. A nil unit means B. The unit factor may
// be any rational; a specifier that does not resolve is a *ValueError.
func New(v int64, unit UnitSpec) (Size, error) {
	return NewFromRat(new(big.Rat).SetInt64(v), unit)
}

// NewFromRat returns a Size of v units, magnitude v × factor(unit).
func NewFromRat(v *big.Rat, unit UnitSpec) (Size, error) {
	if v == nil {
		return Size{}, &ValueError{Param: "value", Value: v, Msg: "must be a number"}
	}
	f, err := factorOf(unit, "units")
	if err != nil {
		return Size{}, err
	}
	return makeSize(f.Mul(v, f))
}

// NewFromString returns a Size of v units, where v is a numeral string
// in any form accepted by big.Rat.SetString, such as "15", "1.5", "3/4"
// or "2e3". Floating-point values are not accepted anywhere else; they
// must be converted to an exact numeral string first.
func NewFromString(v string, unit UnitSpec) (Size, error) {
	r, ok := new(big.Rat).SetString(v)
	if !ok {
		return Size{}, &ValueError{Param: "value", Value: v, Msg: "not a valid numeral"}
	}
	return NewFromRat(r, unit)
}

// Magnitude returns the exact number of bytes. The result is a copy and
// may be modified freely.
func (s Size) Magnitude() *big.Rat {
	return new(big.Rat).Set(s.rat())
}

// Sign returns -1, 0 or +1 depending on the sign of s.
func (s Size) Sign() int {
	return s.rat().Sign()
}

// IsZero reports whether s is 0 B.
func (s Size) IsZero() bool {
	return s.rat().Sign() == 0
}

// Int returns the magnitude truncated toward zero.
func (s Size) Int() *big.Int {
	m := s.rat()
	return new(big.Int).Quo(m.Num(), m.Denom())
}

// Int64 returns the magnitude truncated toward zero, clamped to the
// int64 range, and the accuracy of the result relative to s.
func (s Size) Int64() (int64, radix.Accuracy) {
	t := s.Int()
	if !t.IsInt64() {
		if t.Sign() > 0 {
			return math.MaxInt64, radix.Below
		}
		return math.MinInt64, radix.Above
	}
	v := t.Int64()
	if s.rat().IsInt() {
		return v, radix.Exact
	}
	// truncation moved the value toward zero
	if s.Sign() > 0 {
		return v, radix.Below
	}
	return v, radix.Above
}

// Hash returns a hash of the magnitude. Equal sizes hash equally.
func (s Size) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.rat().RatString()))
	return h.Sum64()
}

// Cmp compares s and y and returns -1, 0 or +1.
func (s Size) Cmp(y Size) int {
	return s.rat().Cmp(y.rat())
}

// Equal reports whether s and y are the same quantity of bytes.
func (s Size) Equal(y Size) bool {
	return s.Cmp(y) == 0
}

// Neg returns -s.
func (s Size) Neg() Size {
	return Size{new(big.Rat).Neg(s.rat())}
}

// Abs returns |s|.
func (s Size) Abs() Size {
	return Size{new(big.Rat).Abs(s.rat())}
}

// Add returns s + y.
func (s Size) Add(y Size) Size {
	return Size{new(big.Rat).Add(s.rat(), y.rat())}
}

// Sub returns s - y.
func (s Size) Sub(y Size) Size {
	return Size{new(big.Rat).Sub(s.rat(), y.rat())}
}

// Mul returns s scaled by the number x. Two sizes cannot be multiplied;
// the result would not be a quantity of bytes.
func (s Size) Mul(x *big.Rat) (Size, error) {
	if x == nil {
		return Size{}, &ValueError{Param: "x", Value: x, Msg: "must be a number"}
	}
	return makeSize(new(big.Rat).Mul(s.rat(), x))
}

// Quo returns the exact ratio s / y, a dimensionless count.
func (s Size) Quo(y Size) (*big.Rat, error) {
	if y.IsZero() {
		return nil, &NonsensicalOpError{Op: "Quo", Value: y}
	}
	return new(big.Rat).Quo(s.rat(), y.rat()), nil
}

// QuoRat returns s divided by the number x.
func (s Size) QuoRat(x *big.Rat) (Size, error) {
	if x == nil {
		return Size{}, &ValueError{Param: "x", Value: x, Msg: "must be a number"}
	}
	if x.Sign() == 0 {
		return Size{}, &NonsensicalOpError{Op: "QuoRat", Value: x}
	}
	return makeSize(new(big.Rat).Quo(s.rat(), x))
}

// Div returns the floored quotient s ÷ y, an integer count.
func (s Size) Div(y Size) (*big.Int, error) {
	if y.IsZero() {
		return nil, &NonsensicalOpError{Op: "Div", Value: y}
	}
	q, _ := floorQuoRem(s.rat(), y.rat())
	return q, nil
}

// DivRat returns the Size floor(s / x) for a number x.
func (s Size) DivRat(x *big.Rat) (Size, error) {
	if x == nil {
		return Size{}, &ValueError{Param: "x", Value: x, Msg: "must be a number"}
	}
	if x.Sign() == 0 {
		return Size{}, &NonsensicalOpError{Op: "DivRat", Value: x}
	}
	q, _ := floorQuoRem(s.rat(), x)
	return makeSize(new(big.Rat).SetInt(q))
}

// Mod returns the remainder of the floored division s ÷ y. The remainder
// carries the sign of y.
func (s Size) Mod(y Size) (Size, error) {
	if y.IsZero() {
		return Size{}, &NonsensicalOpError{Op: "Mod", Value: y}
	}
	_, r := floorQuoRem(s.rat(), y.rat())
	return Size{r}, nil
}

// ModRat returns the remainder of the floored division s / x for a
// number x.
func (s Size) ModRat(x *big.Rat) (Size, error) {
	if x == nil {
		return Size{}, &ValueError{Param: "x", Value: x, Msg: "must be a number"}
	}
	if x.Sign() == 0 {
		return Size{}, &NonsensicalOpError{Op: "ModRat", Value: x}
	}
	_, r := floorQuoRem(s.rat(), x)
	return makeSize(r)
}

// DivMod returns the floored quotient s ÷ y as an integer count together
// with the remainder Size, such that y×quotient + remainder == s.
func (s Size) DivMod(y Size) (*big.Int, Size, error) {
	if y.IsZero() {
		return nil, Size{}, &NonsensicalOpError{Op: "DivMod", Value: y}
	}
	q, r := floorQuoRem(s.rat(), y.rat())
	return q, Size{r}, nil
}

// DivModRat returns the floored quotient and remainder of s divided by
// the number x, both as Sizes.
func (s Size) DivModRat(x *big.Rat) (Size, Size, error) {
	if x == nil {
		return Size{}, Size{}, &ValueError{Param: "x", Value: x, Msg: "must be a number"}
	}
	if x.Sign() == 0 {
		return Size{}, Size{}, &NonsensicalOpError{Op: "DivModRat", Value: x}
	}
	q, r := floorQuoRem(s.rat(), x)
	quo, err := makeSize(new(big.Rat).SetInt(q))
	if err != nil {
		return Size{}, Size{}, err
	}
	rem, err := makeSize(r)
	if err != nil {
		return Size{}, Size{}, err
	}
	return quo, rem, nil
}

// ConvertTo returns the magnitude expressed in the given unit, an exact
// dimensionless count. A nil spec means B.
func (s Size) ConvertTo(spec UnitSpec) (*big.Rat, error) {
	f, err := factorOf(spec, "spec")
	if err != nil {
		return nil, err
	}
	if f.Sign() <= 0 {
		return nil, &ValueError{Param: "spec", Value: f, Msg: "cannot convert to non-positive unit"}
	}
	return f.Quo(s.rat(), f), nil
}

func (s Size) unitFactor() *big.Rat {
	return s.Magnitude()
}

// floorQuoRem returns q = floor(a/b) and r = a - q×b. The remainder has
// the sign of b, matching floored division.
func floorQuoRem(a, b *big.Rat) (*big.Int, *big.Rat) {
	t := new(big.Rat).Quo(a, b)
	q := new(big.Int)
	// the denominator is always positive, so DivMod floors
	q.DivMod(t.Num(), t.Denom(), new(big.Int))
	r := new(big.Rat).SetInt(q)
	r.Sub(a, r.Mul(r, b))
	return q, r
}
