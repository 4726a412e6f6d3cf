// Package errs holds the sentinel errors surfaced across ALICE-Text.
//
// Every error kind named in the design's error-handling model is a package
// level sentinel here. Call sites wrap a sentinel with context using
// fmt.Errorf("%w: ...", errs.ErrX); callers discriminate with errors.Is.
package errs

import "errors"

var (
	// ErrIO wraps failures from the underlying reader or writer.
	ErrIO = errors.New("alicetext: io error")

	// ErrMagicMismatch means the input does not start with the ALICETXT magic.
	ErrMagicMismatch = errors.New("alicetext: magic mismatch")

	// ErrUnsupportedVersion means the container declares a version this build does not know.
	ErrUnsupportedVersion = errors.New("alicetext: unsupported version")

	// ErrHeaderCorrupt means the header is malformed or the container's CRC32
	// footer did not match the bytes it covers.
	ErrHeaderCorrupt = errors.New("alicetext: header corrupt")

	// ErrColumnMissing means a requested column is not present in the directory.
	ErrColumnMissing = errors.New("alicetext: column missing")

	// ErrColumnCorrupt means a column's blob failed to decompress, its stored
	// checksum did not match its decompressed bytes, or it failed to decode.
	ErrColumnCorrupt = errors.New("alicetext: column corrupt")

	// ErrDecodeError means type-specific decoding failed on bytes that passed their checksum.
	ErrDecodeError = errors.New("alicetext: decode error")

	// ErrTypeMismatch means a filter literal is incompatible with its target column's type.
	ErrTypeMismatch = errors.New("alicetext: type mismatch")

	// ErrCancelled means the caller's cancellation signal fired during a query operation.
	ErrCancelled = errors.New("alicetext: cancelled")

	// ErrInternal means an invariant the design treats as unconditional was violated.
	ErrInternal = errors.New("alicetext: internal error")

	// ErrPoisoned means the engine already failed with ErrInternal or ErrColumnCorrupt
	// and refuses further operations.
	ErrPoisoned = errors.New("alicetext: engine poisoned")

	// ErrInvalidState means an operation was attempted out of order against the
	// engine's Unopened -> Open -> Queryable -> Closed lifecycle.
	ErrInvalidState = errors.New("alicetext: invalid engine state")
)
