package fieldsample

import "github.com/oceantrace/fieldsample/internal/fserr"

// ErrorKind classifies the outcome of a sampling operation. Values
//0..5 are stable (Success, Repeat, Delete, Error, OutOfBounds,
// TimeExtrapolation) for ABI parity with the reference implementation.
type ErrorKind = fserr.Kind

const (
	Success            = fserr.Success
	Repeat             = fserr.Repeat
	Delete             = fserr.Delete
	Error              = fserr.Error
	OutOfBounds        = fserr.OutOfBounds
	TimeExtrapolation  = fserr.TimeExtrapolation
)

// SampleError is the concrete error type returned by Sample, SampleUV,
// and SampleUVRotated. Use errors.Is(err, fieldsample.ErrOutOfBounds)
// (etc.) to classify it, or a type assertion to *SampleError to read
// Kind directly.
type SampleError = fserr.SampleErr

// Sentinels for use with errors.Is.
var (
	ErrOutOfBounds       = fserr.ErrOutOfBounds
	ErrTimeExtrapolation = fserr.ErrTimeExtrapolation
	ErrGeneric           = fserr.ErrGeneric
)

// Generic, OutOfBoundsErr, and TimeExtrapolationErr build a
// *SampleError of the matching Kind, tagging it with the failing
// operation op following the teacher's "pkg.Func: detail" strings.
func Generic(op string, cause error) *SampleError         { return fserr.Generic(op, cause) }
func OutOfBoundsErr(op string) *SampleError                { return fserr.OutOfBoundsErr(op) }
func TimeExtrapolationErr(op string) *SampleError           { return fserr.TimeExtrapolationErr(op) }
