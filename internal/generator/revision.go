package generator

import "github.com/altuslabsxyz/generate-version/internal/manifest"

// RevisionDate is the outcome of resolving the source revision date.
//
// It is either a concrete date or a fallback carrying the cause. It is not an
// error type, so a failed lookup cannot be propagated as a fatal failure.
type RevisionDate struct {
	value string
	cause error
}

// ResolvedDate returns a RevisionDate holding date.
func ResolvedDate(date string) RevisionDate {
	return RevisionDate{value: date}
}

// FallbackDate returns a RevisionDate that renders as "unknown".
func FallbackDate(cause error) RevisionDate {
	return RevisionDate{cause: cause}
}

// String returns the date, or "unknown" for a fallback.
func (d RevisionDate) String() string {
	if !d.Resolved() {
		return manifest.Unknown
	}
	return d.value
}

// Resolved reports whether a concrete date was obtained.
func (d RevisionDate) Resolved() bool {
	return d.cause == nil && d.value != ""
}

// Cause returns why the lookup fell back, or nil.
func (d RevisionDate) Cause() error {
	return d.cause
}
