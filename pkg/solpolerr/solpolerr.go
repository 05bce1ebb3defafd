/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package solpolerr defines the closed set of error kinds the engine raises,
// as sentinel values that every caller can match with errors.Is regardless of
// the message text attached at the call site.
package solpolerr

/*****************************************************************************************************************/

import (
	"errors"
	"fmt"
)

/*****************************************************************************************************************/

var (
	// ErrInvalidData covers shape mismatches, missing required channels,
	// non-2-D data where 2-D is required, singular inversions, and
	// unrecognised POLAR headers.
	ErrInvalidData = errors.New("invalid data")

	// ErrMissingAlpha is raised when a planned path needs the alpha
	// position-angle field and the caller has not supplied or allowed it
	// to be synthesised.
	ErrMissingAlpha = errors.New("missing alpha")

	// ErrUnsupportedTransformation is raised when no path exists between
	// the classified source system and the requested target, or when
	// IMAX is requested from a non-MZP source.
	ErrUnsupportedTransformation = errors.New("unsupported transformation")

	// ErrUnsupportedInstrument only ever surfaces from the ingest
	// collaborator; the core never raises it directly.
	ErrUnsupportedInstrument = errors.New("unsupported instrument")

	// ErrInvalidArguments covers missing out_angles for an edge that
	// needs them, and unknown target system names.
	ErrInvalidArguments = errors.New("invalid arguments")
)

/*****************************************************************************************************************/

// InvalidData wraps ErrInvalidData with a detail message, e.g. "singular matrix".
func InvalidData(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, detail)
}

/*****************************************************************************************************************/

// MissingAlpha wraps ErrMissingAlpha with a detail message.
func MissingAlpha(detail string) error {
	return fmt.Errorf("%w: %s", ErrMissingAlpha, detail)
}

/*****************************************************************************************************************/

// UnsupportedTransformation wraps ErrUnsupportedTransformation, naming the
// source and destination systems that could not be connected.
func UnsupportedTransformation(detail string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedTransformation, detail)
}

/*****************************************************************************************************************/

// UnsupportedInstrument wraps ErrUnsupportedInstrument with a detail message.
func UnsupportedInstrument(detail string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedInstrument, detail)
}

/*****************************************************************************************************************/

// InvalidArguments wraps ErrInvalidArguments with a detail message.
func InvalidArguments(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArguments, detail)
}

/*****************************************************************************************************************/
