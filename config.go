// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"math/big"

	"github.com/jorgefdezg/justbytes/radix"
)

// A ValueConfig controls how a size is decomposed into a numeric value
// and a unit, and how that value is rendered as digits. The zero value
// is not useful; start from NewValueConfig.
type ValueConfig struct {
	// Base is the numeral base used for rendering, at least 2.
	Base int
	// MaxPlaces is the maximum number of fractional digits rendered.
	MaxPlaces int
	// BinaryUnits selects the binary (×1024) unit family over the
	// decimal (×1000) one.
	BinaryUnits bool
	// MinValue is the smallest represented magnitude, scaled by the
	// family base, below which a unit is considered natural for
	// display. It must be non-negative; nil means 1.
	MinValue *big.Rat
	// Unit, when non-nil, forces the displayed unit. It must be one of
	// the named units.
	Unit UnitSpec
	// ExactValue prefers a coarser unit in which the value renders with
	// no rounding error, when one exists.
	ExactValue bool
	// Rounding is the rounding mode applied to the last rendered place.
	Rounding radix.RoundingMode
}

// NewValueConfig returns the stock value configuration: base 10, two
// fractional places, binary units, minimum value 1, rounding half toward
// zero.
func NewValueConfig() ValueConfig {
	return ValueConfig{
		Base:        10,
		MaxPlaces:   2,
		BinaryUnits: true,
		MinValue:    big.NewRat(1, 1),
		Rounding:    radix.RoundHalfZero,
	}
}

func (c ValueConfig) minValue() *big.Rat {
	if c.MinValue == nil {
		return big.NewRat(1, 1)
	}
	return c.MinValue
}

func (c ValueConfig) rounding() radix.RoundingMode {
	return c.Rounding
}

func (c ValueConfig) validate() error {
	if c.Base < 2 {
		return &ValueError{Param: "Base", Value: c.Base, Msg: "must be at least 2"}
	}
	if c.MaxPlaces < 0 {
		return &ValueError{Param: "MaxPlaces", Value: c.MaxPlaces, Msg: "must be non-negative"}
	}
	if c.MinValue != nil && c.MinValue.Sign() < 0 {
		return &ValueError{Param: "MinValue", Value: c.MinValue, Msg: "must be non-negative"}
	}
	if !c.Rounding.Valid() {
		return &ValueError{Param: "Rounding", Value: c.Rounding, Msg: "unknown rounding mode"}
	}
	if c.Unit != nil {
		if _, ok := c.Unit.(Unit); !ok {
			return &ValueError{Param: "Unit", Value: c.Unit, Msg: "must be a named unit"}
		}
	}
	return nil
}

// A BaseConfig controls rendering of the numeral base itself.
type BaseConfig struct {
	// UsePrefix prepends the conventional prefix for bases 2, 8 and 16
	// ("0b", "0o", "0x").
	UsePrefix bool
}

// A DigitsConfig controls how individual digits become text.
type DigitsConfig struct {
	// UseLetters renders digits past 9 as letters, as long as the base
	// does not exceed the letter table. Otherwise every digit is
	// printed as a decimal number and Separator is placed between
	// digits.
	UseLetters bool
	// UseCaps selects upper-case letters.
	UseCaps bool
	// Separator separates digits when letters are not used.
	Separator string
}

// A StripConfig controls the stripping of trailing fractional zeros.
type StripConfig struct {
	// Strip always strips trailing zeros.
	Strip bool
	// StripExact strips trailing zeros when the rendering is exact.
	StripExact bool
	// StripWhole strips the fractional part entirely when the rendering
	// is exact and the value is whole.
	StripWhole bool
}

// A DisplayConfig is the display policy: how a rendered numeral and its
// exactness relation become final text.
type DisplayConfig struct {
	// ShowApprox prepends ApproxSymbol when the rendering is not exact.
	ShowApprox bool
	// ApproxSymbol marks approximate renderings; "~" if empty.
	ApproxSymbol string
	Base         BaseConfig
	Digits       DigitsConfig
	Strip        StripConfig
}

// NewDisplayConfig returns the stock display policy: approximation
// marker "~", letter digits, whole-number fractions stripped.
func NewDisplayConfig() DisplayConfig {
	return DisplayConfig{
		ShowApprox:   true,
		ApproxSymbol: "~",
		Digits:       DigitsConfig{UseLetters: true, Separator: ":"},
		Strip:        StripConfig{StripWhole: true},
	}
}

func (c DisplayConfig) approxSymbol() string {
	if c.ApproxSymbol == "" {
		return "~"
	}
	return c.ApproxSymbol
}

// A StringConfig pairs the value and display policies used by GetString.
type StringConfig struct {
	Value   ValueConfig
	Display DisplayConfig
}

// NewStringConfig returns the stock string configuration.
func NewStringConfig() StringConfig {
	return StringConfig{Value: NewValueConfig(), Display: NewDisplayConfig()}
}

func (c StringConfig) validate() error {
	return c.Value.validate()
}

// Process-wide policy. The package performs no synchronization: set
// these once at startup, or guard updates externally.
var (
	strict        bool
	defaultString = NewStringConfig()
)

// Strict reports whether strict mode is active. Under strict mode,
// constructing a Size with a fractional magnitude fails with
// ErrFractionalResult.
func Strict() bool {
	return strict
}

// SetStrict sets strict mode. Existing values are unaffected.
func SetStrict(on bool) {
	strict = on
}

// DefaultStringConfig returns the configuration used by Size.String.
func DefaultStringConfig() StringConfig {
	return defaultString
}

// SetDefaultStringConfig replaces the configuration used by Size.String.
// The configuration is validated first.
func SetDefaultStringConfig(cfg StringConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	defaultString = cfg
	return nil
}
