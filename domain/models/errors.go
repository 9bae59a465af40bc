package models

import "fmt"

// DataIntegrityError reports a size/undersize length mismatch for one sample.
// It identifies the sample so the caller can report it and keep processing the
// rest of the batch.
type DataIntegrityError struct {
	Sample       string
	SizesLen     int
	UndersizeLen int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("sample %q: sizes and undersize must have same length: %d vs %d",
		e.Sample, e.SizesLen, e.UndersizeLen)
}

// EmptyCandidateSetError means the aggregator was asked to compare a baseline
// against nothing. Rendering a recommendation from it would be misleading, so
// callers must stop before any summary text.
type EmptyCandidateSetError struct {
	Baseline string
}

func (e *EmptyCandidateSetError) Error() string {
	return fmt.Sprintf("no candidate samples to compare against baseline %q", e.Baseline)
}

// MissingInputError covers an absent or unreadable source file, or a required
// column missing from it. Fatal for the surface that needed the file.
type MissingInputError struct {
	Path   string
	Column string // set when a required column is missing
	Err    error
}

func (e *MissingInputError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("input %s: required column %q not found", e.Path, e.Column)
	}
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error { return e.Err }
