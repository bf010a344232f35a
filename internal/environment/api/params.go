/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

//nolint:all
package api

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Number defines a type constraint for numeric query parameters.
type Number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// ParseString parses a string parameter into a concrete type.
type ParseString[T Number | string | bool] func(v string) (T, error)

// OpenAPIOperation resolves a raw parameter value, applying defaults or
// requiredness as configured.
type OpenAPIOperation[T Number | string | bool] func(actual string) (T, error)

// Constraint validates a parsed parameter value.
type Constraint[T Number | string | bool] func(actual T) error

func parseInt32(param string) (int32, error) {
	if param == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(param, 10, 32)
	return int32(v), err
}

// WithParse parses the parameter and allows it to be empty.
func WithParse[T Number | string | bool](parse ParseString[T]) OpenAPIOperation[T] {
	return func(actual string) (T, error) {
		return parse(actual)
	}
}

// WithMinimum enforces a lower bound on a numeric parameter.
func WithMinimum[T Number](expected T) Constraint[T] {
	return func(actual T) error {
		if actual < expected {
			return errors.New("provided parameter is not respecting minimum value constraint")
		}
		return nil
	}
}

func parseNumericParameter[T Number](param string, fn OpenAPIOperation[T], checks ...Constraint[T]) (T, error) {
	v, err := fn(param)
	if err != nil {
		return 0, fmt.Errorf("query parameter not parsable: %w", err)
	}
	for _, check := range checks {
		if err := check(v); err != nil {
			return 0, err
		}
	}
	return v, nil
}

func parseQuery(rawQuery string) (url.Values, error) {
	return url.ParseQuery(rawQuery)
}
