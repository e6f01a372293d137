package rtfmerge

import "errors"

// Sentinel errors for merge operations.
var (
	// ErrInvalidInputType is returned by Add when the input is neither a
	// Document nor a string.
	ErrInvalidInputType = errors.New("input must be a Document or a string")

	// ErrInvalidArgument is returned by New for an argument that is not a
	// Document, a string, or an Options value.
	ErrInvalidArgument = errors.New("invalid constructor argument")

	// ErrUndefinedField is returned when getting or setting a header field
	// name outside the recognized set.
	ErrUndefinedField = errors.New("undefined header field")

	// ErrIndexOutOfRange is returned when accessing a registry index that
	// is negative, was never set, or has been removed.
	ErrIndexOutOfRange = errors.New("document index out of range")

	// Output-time errors.
	ErrReadFailure  = errors.New("failed to read document")
	ErrSinkOpen     = errors.New("output sink unavailable")
	ErrFileOpen     = errors.New("failed to open output file")
	ErrWriteFailure = errors.New("failed to write merged output")
)
