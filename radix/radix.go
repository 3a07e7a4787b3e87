// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package radix implements positional rendering of exact rational numbers
// in an arbitrary base, together with the integer rounding primitive that
// the rendering is built on.
//
// All functions are pure: inputs are never modified and results share no
// storage with them. The rounding error introduced by an operation is
// described by an Accuracy, relative to the exact input value.
package radix

import (
	"errors"
	"math/big"
)

// RoundingMode determines how a rational value is rounded to an integer,
// or to a fixed number of fractional digits. Rounding may change the
// value; the rounding error is described by the returned Accuracy.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	RoundDown     RoundingMode = iota // toward negative infinity
	RoundUp                           // toward positive infinity
	RoundToZero                       // toward zero
	RoundHalfDown                     // to nearest, ties toward negative infinity
	RoundHalfUp                       // to nearest, ties toward positive infinity
	RoundHalfZero                     // to nearest, ties toward zero
	RoundHalfEven                     // to nearest, ties to even
)

//go:generate stringer -type=RoundingMode

// Valid reports whether m is one of the supported rounding modes.
func (m RoundingMode) Valid() bool {
	return m <= RoundHalfEven
}

// Accuracy describes the rounding error produced by the most recent
// operation that generated a value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a result.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

// Errors returned by the package. They are reported verbatim; callers
// wanting to attach argument context must wrap them.
var (
	ErrBase     = errors.New("base must be at least 2")
	ErrPlaces   = errors.New("number of places must be non-negative")
	ErrRounding = errors.New("unknown rounding mode")
)

var one = big.NewInt(1)

// RoundToInt rounds x to an integer according to mode. The returned
// Accuracy describes the result relative to x: Below if the result is
// less than x, Above if greater, Exact if x was already integral.
func RoundToInt(x *big.Rat, mode RoundingMode) (*big.Int, Accuracy, error) {
	if !mode.Valid() {
		return nil, Exact, ErrRounding
	}
	if x.IsInt() {
		return new(big.Int).Set(x.Num()), Exact, nil
	}

	// x.Denom() is always positive, so DivMod yields the floor and a
	// remainder in [1, denom).
	floor, rem := new(big.Int), new(big.Int)
	floor.DivMod(x.Num(), x.Denom(), rem)
	ceil := new(big.Int).Add(floor, one)

	var up bool
	switch mode {
	case RoundDown:
		up = false
	case RoundUp:
		up = true
	case RoundToZero:
		up = x.Sign() < 0
	default:
		// half modes: compare 2*rem against the denominator
		switch c := new(big.Int).Lsh(rem, 1).Cmp(x.Denom()); {
		case c < 0:
			up = false
		case c > 0:
			up = true
		default:
			switch mode {
			case RoundHalfDown:
				up = false
			case RoundHalfUp:
				up = true
			case RoundHalfZero:
				up = x.Sign() < 0
			case RoundHalfEven:
				up = floor.Bit(0) == 1
			}
		}
	}
	if up {
		return ceil, Above, nil
	}
	return floor, Below, nil
}

// A Numeral is the positional representation of a rational number in a
// given base: a sign, the integer part digits (most significant first,
// never empty) and a fixed-width run of fractional digits. Digits are
// kept as ints so that any base is representable; turning them into text
// is the caller's concern.
type Numeral struct {
	Negative bool
	Base     int
	Integer  []int
	Fraction []int
}

// FromRational renders x in the given base with exactly maxPlaces
// fractional digits, rounding the last place according to mode. The
// returned Accuracy relates the rendered value to x.
func FromRational(x *big.Rat, base, maxPlaces int, mode RoundingMode) (Numeral, Accuracy, error) {
	if base < 2 {
		return Numeral{}, Exact, ErrBase
	}
	if maxPlaces < 0 {
		return Numeral{}, Exact, ErrPlaces
	}

	// Scaling by base**maxPlaces and rounding once makes carry
	// propagation into the integer part automatic.
	scale := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(maxPlaces)), nil)
	scaled := new(big.Rat).Mul(x, new(big.Rat).SetInt(scale))
	n, acc, err := RoundToInt(scaled, mode)
	if err != nil {
		return Numeral{}, Exact, err
	}

	abs := new(big.Int).Abs(n)
	quo, rem := new(big.Int).QuoRem(abs, scale, new(big.Int))
	return Numeral{
		Negative: n.Sign() < 0,
		Base:     base,
		Integer:  digitsOf(quo, base, 1),
		Fraction: digitsOf(rem, base, maxPlaces),
	}, acc, nil
}

// Rat returns the exact rational value that n denotes.
func (n Numeral) Rat() *big.Rat {
	b := big.NewInt(int64(n.Base))
	v := new(big.Int)
	for _, d := range n.Integer {
		v.Mul(v, b).Add(v, big.NewInt(int64(d)))
	}
	scale := new(big.Int).Exp(b, big.NewInt(int64(len(n.Fraction))), nil)
	v.Mul(v, scale)
	for i, d := range n.Fraction {
		p := new(big.Int).Exp(b, big.NewInt(int64(len(n.Fraction)-1-i)), nil)
		v.Add(v, p.Mul(p, big.NewInt(int64(d))))
	}
	if n.Negative {
		v.Neg(v)
	}
	return new(big.Rat).SetFrac(v, scale)
}

// digitsOf decomposes v (non-negative) into base digits, most significant
// first, left-padded with zeros to at least width digits.
func digitsOf(v *big.Int, base, width int) []int {
	b := big.NewInt(int64(base))
	var ds []int
	v = new(big.Int).Set(v)
	for v.Sign() > 0 {
		r := new(big.Int)
		v.QuoRem(v, b, r)
		ds = append(ds, int(r.Int64()))
	}
	for len(ds) < width {
		ds = append(ds, 0)
	}
	// digits were produced least significant first
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
	return ds
}
