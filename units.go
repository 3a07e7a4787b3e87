// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import "math/big"

// A Unit is a named unit of measurement for byte quantities: the byte
// itself, or a member of the binary (factor 1024) or decimal (factor
// 1000) prefix family. Units are immutable; the exported variables below
// are the only values.
type Unit struct {
	abbr string // prefix abbreviation, "" for B
	base int64  // 1024 or 1000, 0 for B
	exp  int
}

// The byte unit and the binary (IEC) and decimal (SI) prefix families,
// in ascending order of magnitude.
var (
	B = Unit{}

	KiB = Unit{"Ki", 1024, 1}
	MiB = Unit{"Mi", 1024, 2}
	GiB = Unit{"Gi", 1024, 3}
	TiB = Unit{"Ti", 1024, 4}
	PiB = Unit{"Pi", 1024, 5}
	EiB = Unit{"Ei", 1024, 6}
	ZiB = Unit{"Zi", 1024, 7}
	YiB = Unit{"Yi", 1024, 8}

	KB = Unit{"k", 1000, 1}
	MB = Unit{"M", 1000, 2}
	GB = Unit{"G", 1000, 3}
	TB = Unit{"T", 1000, 4}
	PB = Unit{"P", 1000, 5}
	EB = Unit{"E", 1000, 6}
	ZB = Unit{"Z", 1000, 7}
	YB = Unit{"Y", 1000, 8}
)

var (
	binaryScale  = [...]Unit{KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB}
	decimalScale = [...]Unit{KB, MB, GB, TB, PB, EB, ZB, YB}
)

// BinaryUnits returns the binary prefix units in ascending exponent
// order. The slice is a fresh copy on every call.
func BinaryUnits() []Unit {
	s := binaryScale
	return s[:]
}

// DecimalUnits returns the decimal prefix units in ascending exponent
// order. The slice is a fresh copy on every call.
func DecimalUnits() []Unit {
	s := decimalScale
	return s[:]
}

// Units returns all named units: B followed by the binary units and then
// the decimal units.
func Units() []Unit {
	us := make([]Unit, 0, 1+len(binaryScale)+len(decimalScale))
	us = append(us, B)
	us = append(us, binaryScale[:]...)
	return append(us, decimalScale[:]...)
}

// Factor returns the unit's scale factor in bytes, base**exponent.
func (u Unit) Factor() *big.Rat {
	if u.base == 0 {
		return big.NewRat(1, 1)
	}
	f := new(big.Int).Exp(big.NewInt(u.base), big.NewInt(int64(u.exp)), nil)
	return new(big.Rat).SetInt(f)
}

// Abbr returns the unit's prefix abbreviation, without the trailing "B";
// it is empty for B itself.
func (u Unit) Abbr() string {
	return u.abbr
}

// Exponent returns the unit's exponent; 0 for B.
func (u Unit) Exponent() int {
	return u.exp
}

func (u Unit) String() string {
	return u.abbr + bytesSymbol
}

func (u Unit) unitFactor() *big.Rat {
	return u.Factor()
}

// unitFor returns the unit with the given exponent in the binary or
// decimal family. Exponent 0 is B in either family.
func unitFor(binary bool, exp int) (Unit, bool) {
	if exp == 0 {
		return B, true
	}
	scale := decimalScale[:]
	if binary {
		scale = binaryScale[:]
	}
	if exp < 1 || exp > len(scale) {
		return Unit{}, false
	}
	return scale[exp-1], true
}

// familyBase returns the multiplicative step between successive units of
// the family.
func familyBase(binary bool) *big.Rat {
	if binary {
		return big.NewRat(1024, 1)
	}
	return big.NewRat(1000, 1)
}
