// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"errors"
	"fmt"
)

// ErrFractionalResult is reported when strict mode is active and an
// operation would construct a Size whose magnitude is not an integral
// number of bytes. It is always wrapped in a *ValueError or returned
// verbatim; test with errors.Is.
var ErrFractionalResult = errors.New("magnitude must be an integral number of bytes in strict mode")

// A ValueError reports an argument whose value is unsuitable for the
// requested operation: a malformed numeral, an unresolvable unit
// specifier, a non-positive conversion factor, ill-ordered bounds, or an
// invalid configuration field.
type ValueError struct {
	Param string
	Value interface{}
	Msg   string
	err   error
}

func (e *ValueError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unsuitable value"
	}
	return fmt.Sprintf("%s: %v: %s", e.Param, e.Value, msg)
}

func (e *ValueError) Unwrap() error {
	return e.err
}

// A NonsensicalOpError reports an operation whose operand types are
// valid but whose operand value makes the operation meaningless, such as
// division or remainder by a zero size or zero number.
type NonsensicalOpError struct {
	Op    string
	Value interface{}
}

func (e *NonsensicalOpError) Error() string {
	return fmt.Sprintf("operation %s is nonsensical with operand %v", e.Op, e.Value)
}
