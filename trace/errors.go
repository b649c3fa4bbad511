// SPDX-License-Identifier: MIT
// Package: algotrace/trace
//
// errors.go — sentinel errors and marking helpers.
//
// Error policy:
//   • Family packages define their own sentinels and mark them with
//     InvalidInput, so errors.Is(err, ErrInvalidInput) holds for all of them.
//   • Context is attached with errors.Wrapf at the call site; the sentinel
//     message itself never carries parameters.
//   • Algorithms never panic on user input. Recorder misuse (Record after
//     Finish) is a programmer error and panics with an assertion failure.

package trace

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput marks every error returned by an instrumented algorithm
	// when its input violates a documented precondition. No step is produced.
	ErrInvalidInput = errors.New("trace: invalid input")

	// ErrEmptyTrace indicates a trace with zero steps.
	ErrEmptyTrace = errors.New("trace: trace is empty")

	// ErrMalformedTrace indicates a violation of the step invariants
	// (index density, terminal placement, highlight bounds).
	ErrMalformedTrace = errors.New("trace: malformed trace")
)

// InvalidInput marks err as an ErrInvalidInput while keeping its own identity,
// so both errors.Is(err, ErrInvalidInput) and errors.Is(err, err) hold.
func InvalidInput(err error) error {
	return errors.Mark(err, ErrInvalidInput)
}

// IsInvalidInput reports whether err was marked with ErrInvalidInput.
// Marks are recognized by errors.Is from github.com/cockroachdb/errors,
// not by the standard library, so callers should use this helper.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
