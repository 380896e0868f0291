package align

import "errors"

// Sentinel errors. Errors from scoring (ErrMalformedMatrix,
// ErrUnsupportedAlphabet, ErrUnknownSymbol) and gap (ErrInvalidGapPenalty)
// are returned unchanged or wrapped; match every kind with errors.Is.
var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")

	// ErrNilMatrix indicates Options carried no scoring matrix.
	ErrNilMatrix = errors.New("align: scoring matrix is nil")

	// ErrUnknownMode indicates a Mode outside Global, Local, LocalLinearSpace.
	ErrUnknownMode = errors.New("align: unknown alignment mode")

	// ErrUnknownScan indicates a Scan outside ScanNone, ScanRefQuery, ScanMatrix.
	ErrUnknownScan = errors.New("align: unknown scan")

	// ErrNeedsFullMatrix indicates Fill was asked for LocalLinearSpace,
	// which never materialises the matrix.
	ErrNeedsFullMatrix = errors.New("align: LocalLinearSpace keeps no DP matrix")

	// ErrOutOfRange indicates a DP matrix index outside its bounds.
	ErrOutOfRange = errors.New("align: index out of range")
)
