// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorgefdezg/justbytes/radix"
)

var (
	_ fmt.Stringer   = Size{}
	_ fmt.GoStringer = Size{}
	_ UnitSpec       = Size{}
	_ UnitSpec       = Unit{}
	_ UnitSpec       = Factor{}
)

// sz builds a Size from a numeral string and unit, failing the test on
// error.
func sz(t *testing.T, v string, unit UnitSpec) Size {
	t.Helper()
	s, err := NewFromString(v, unit)
	require.NoError(t, err)
	return s
}

func rat(t *testing.T, v string) *big.Rat {
	t.Helper()
	r, ok := new(big.Rat).SetString(v)
	require.True(t, ok, "bad rational literal %q", v)
	return r
}

func TestNew(t *testing.T) {
	tests := []struct {
		value string
		unit  UnitSpec
		want  string // magnitude, RatString form
	}{
		{"0", nil, "0"},
		{"1", nil, "1"},
		{"2", KiB, "2048"},
		{"1.5", KB, "1500"},
		{"3/4", MiB, "786432"},
		{"-1", GiB, "-1073741824"},
		{"7", NewIntFactor(3), "21"},
		{"2e3", B, "2000"},
	}
	for _, tt := range tests {
		s, err := NewFromString(tt.value, tt.unit)
		require.NoError(t, err, "NewFromString(%q, %v)", tt.value, tt.unit)
		assert.Equal(t, tt.want, s.Magnitude().RatString(), "NewFromString(%q, %v)", tt.value, tt.unit)
	}
}

func TestNewWithSizeAsUnit(t *testing.T) {
	// a Size used as the unit contributes its magnitude as the factor
	unit := sz(t, "3", B)
	s, err := New(7, unit)
	require.NoError(t, err)
	assert.True(t, s.Equal(sz(t, "21", B)))
}

func TestNewErrors(t *testing.T) {
	var verr *ValueError

	_, err := NewFromString("1.2.3", B)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "value", verr.Param)

	_, err = NewFromString("ten", nil)
	require.ErrorAs(t, err, &verr)

	_, err = NewFromRat(nil, B)
	require.ErrorAs(t, err, &verr)
}

func TestZeroValue(t *testing.T) {
	// the zero value is a usable 0 B
	var s Size
	assert.True(t, s.IsZero())
	assert.Equal(t, 0, s.Sign())
	assert.Equal(t, "0", s.Magnitude().RatString())
	assert.True(t, s.Equal(s.Neg()))
}

func TestStrictMode(t *testing.T) {
	SetStrict(true)
	defer SetStrict(false)

	_, err := NewFromString("1.5", B)
	assert.ErrorIs(t, err, ErrFractionalResult)

	_, err = NewFromString("3", KiB)
	assert.NoError(t, err)

	s := sz(t, "1", B)
	_, err = s.Mul(rat(t, "1/3"))
	assert.ErrorIs(t, err, ErrFractionalResult)

	_, err = s.QuoRat(rat(t, "2"))
	assert.ErrorIs(t, err, ErrFractionalResult)
}

func TestAddSub(t *testing.T) {
	a, b := sz(t, "3", KiB), sz(t, "1", KiB)
	assert.True(t, a.Add(b).Equal(sz(t, "4096", B)))
	assert.True(t, a.Sub(b).Equal(sz(t, "2048", B)))
	assert.True(t, b.Sub(a).Equal(sz(t, "-2048", B)))
	// operands unchanged
	assert.Equal(t, "3072", a.Magnitude().RatString())
}

func TestUnary(t *testing.T) {
	s := sz(t, "-17/10", B)
	assert.Equal(t, "17/10", s.Abs().Magnitude().RatString())
	assert.Equal(t, "17/10", s.Neg().Magnitude().RatString())
	assert.Equal(t, "-17/10", s.Neg().Neg().Magnitude().RatString())
}

func TestMul(t *testing.T) {
	s := sz(t, "3", KiB)
	got, err := s.Mul(rat(t, "1/2"))
	require.NoError(t, err)
	assert.Equal(t, "1536", got.Magnitude().RatString())
}

func TestQuo(t *testing.T) {
	a, b := sz(t, "10", B), sz(t, "4", B)
	q, err := a.Quo(b)
	require.NoError(t, err)
	assert.Equal(t, "5/2", q.RatString())

	s, err := a.QuoRat(rat(t, "4"))
	require.NoError(t, err)
	assert.Equal(t, "5/2", s.Magnitude().RatString())
}

func TestFlooredDivMod(t *testing.T) {
	tests := []struct {
		a, b     string
		quo, rem string
	}{
		{"10", "3", "3", "1"},
		{"-10", "3", "-4", "2"},
		{"10", "-3", "-4", "-2"},
		{"-10", "-3", "3", "-1"},
		{"7/2", "1", "3", "1/2"},
	}
	for _, tt := range tests {
		a, b := sz(t, tt.a, B), sz(t, tt.b, B)

		q, err := a.Div(b)
		require.NoError(t, err, "Div(%s, %s)", tt.a, tt.b)
		assert.Equal(t, tt.quo, q.String(), "Div(%s, %s)", tt.a, tt.b)

		r, err := a.Mod(b)
		require.NoError(t, err)
		assert.Equal(t, tt.rem, r.Magnitude().RatString(), "Mod(%s, %s)", tt.a, tt.b)

		dq, dr, err := a.DivMod(b)
		require.NoError(t, err)
		assert.Equal(t, tt.quo, dq.String())
		assert.Equal(t, tt.rem, dr.Magnitude().RatString())

		// divmod identity: b*q + r == a
		back, err := b.Mul(new(big.Rat).SetInt(dq))
		require.NoError(t, err)
		assert.True(t, back.Add(dr).Equal(a), "identity for (%s, %s)", tt.a, tt.b)
	}
}

func TestDivModRat(t *testing.T) {
	s := sz(t, "10", B)
	q, r, err := s.DivModRat(rat(t, "3"))
	require.NoError(t, err)
	assert.Equal(t, "3", q.Magnitude().RatString())
	assert.Equal(t, "1", r.Magnitude().RatString())

	d, err := s.DivRat(rat(t, "3"))
	require.NoError(t, err)
	assert.True(t, d.Equal(q))

	m, err := s.ModRat(rat(t, "3"))
	require.NoError(t, err)
	assert.True(t, m.Equal(r))
}

func TestZeroDivisors(t *testing.T) {
	s := sz(t, "10", B)
	var zero Size
	var oerr *NonsensicalOpError

	_, err := s.Quo(zero)
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, "Quo", oerr.Op)

	_, err = s.Div(zero)
	assert.ErrorAs(t, err, &oerr)
	_, err = s.Mod(zero)
	assert.ErrorAs(t, err, &oerr)
	_, _, err = s.DivMod(zero)
	assert.ErrorAs(t, err, &oerr)

	z := new(big.Rat)
	_, err = s.QuoRat(z)
	assert.ErrorAs(t, err, &oerr)
	_, err = s.DivRat(z)
	assert.ErrorAs(t, err, &oerr)
	_, err = s.ModRat(z)
	assert.ErrorAs(t, err, &oerr)
	_, _, err = s.DivModRat(z)
	assert.ErrorAs(t, err, &oerr)

	// value errors are not operation errors
	_, err = s.Mul(nil)
	assert.False(t, errors.As(err, &oerr))
}

func TestCmpAndHash(t *testing.T) {
	a, b, c := sz(t, "1", KiB), sz(t, "1024", B), sz(t, "1", KB)
	assert.Equal(t, 0, a.Cmp(b))
	assert.True(t, a.Equal(b))
	assert.Equal(t, 1, a.Cmp(c))
	assert.Equal(t, -1, c.Cmp(a))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestInt(t *testing.T) {
	tests := []struct {
		v    string
		want int64
		acc  radix.Accuracy
	}{
		{"0", 0, radix.Exact},
		{"42", 42, radix.Exact},
		{"17/10", 1, radix.Below},
		{"-17/10", -1, radix.Above},
	}
	for _, tt := range tests {
		s := sz(t, tt.v, B)
		assert.Equal(t, tt.want, s.Int().Int64(), "Int(%s)", tt.v)
		got, acc := s.Int64()
		assert.Equal(t, tt.want, got, "Int64(%s)", tt.v)
		assert.Equal(t, tt.acc, acc, "Int64(%s) accuracy", tt.v)
	}
}

func TestConvertTo(t *testing.T) {
	s := sz(t, "1536", B)
	v, err := s.ConvertTo(KiB)
	require.NoError(t, err)
	assert.Equal(t, "3/2", v.RatString())

	v, err = s.ConvertTo(nil)
	require.NoError(t, err)
	assert.Equal(t, "1536", v.RatString())

	// a Size as the conversion target
	v, err = s.ConvertTo(sz(t, "512", B))
	require.NoError(t, err)
	assert.Equal(t, "3", v.RatString())

	var verr *ValueError
	_, err = s.ConvertTo(NewIntFactor(0))
	require.ErrorAs(t, err, &verr)
	_, err = s.ConvertTo(NewIntFactor(-1))
	require.ErrorAs(t, err, &verr)
}

func TestConvertToRoundTrip(t *testing.T) {
	for _, v := range []string{"0", "1", "-1536", "12345678901234567890", "7/3"} {
		s := sz(t, v, B)
		for _, u := range Units() {
			c, err := s.ConvertTo(u)
			require.NoError(t, err)
			back := new(big.Rat).Mul(c, u.Factor())
			assert.Zero(t, back.Cmp(s.rat()), "round trip %s through %s", v, u)
		}
	}
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "Size(171/10)", sz(t, "17.1", B).GoString())
	assert.Equal(t, "Size(0)", Size{}.GoString())
}
