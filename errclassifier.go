// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import "github.com/bassosimone/errclass"

// ErrClassifier maps errors to short categorical labels for structured logs.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
//
//	cfg.ErrClassifier = ErrClassifierFunc(func(err error) string { return "" })
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// DefaultErrClassifier classifies errors using [errclass.New].
//
// It returns an empty string for a nil error and [errclass.EGENERIC]
// for errors it does not recognize, including [*PanicError].
var DefaultErrClassifier = ErrClassifierFunc(errclass.New)
