// Package timeline defines the Entry/Timeline value types and sentinel
// errors shared across github.com/katalvlaran/speechwarp.
package timeline

import "errors"

// Sentinel errors for timeline validation.
var (
	// ErrInvalidInterval indicates a negative timestamp or StartTime > EndTime.
	ErrInvalidInterval = errors.New("timeline: entry interval is invalid")
	// ErrUnsortedSiblings indicates sibling entries out of StartTime order.
	ErrUnsortedSiblings = errors.New("timeline: sibling entries must be sorted by start time")
	// ErrChildOutOfBounds indicates a child interval outside its parent.
	ErrChildOutOfBounds = errors.New("timeline: child interval must lie within its parent")
)

// EntryType is the category tag of a timeline entry. The five canonical
// categories below cover the hierarchy the aligner works with; any other
// value is treated as an opaque custom category and carried through
// unchanged.
type EntryType string

const (
	// EntryTypeSegment is a top-level stretch of audio, typically a clause
	// group produced by synthesis or segmentation.
	EntryTypeSegment EntryType = "segment"
	// EntryTypeSentence is one sentence within a segment.
	EntryTypeSentence EntryType = "sentence"
	// EntryTypeWord is a single spoken word.
	EntryTypeWord EntryType = "word"
	// EntryTypeToken is a sub-word orthographic token.
	EntryTypeToken EntryType = "token"
	// EntryTypePhone is a single phone within a word.
	EntryTypePhone EntryType = "phone"
)

// Entry is a labeled half-open interval [StartTime, EndTime) in seconds,
// with an optional nested child timeline. Within a parent, children are
// sorted by StartTime and bounded by the parent interval.
type Entry struct {
	Type      EntryType
	Text      string
	StartTime float64
	EndTime   float64
	Timeline  Timeline
}

// Duration returns the entry's interval length in seconds.
func (e Entry) Duration() float64 {
	return e.EndTime - e.StartTime
}

// Timeline is an ordered forest of entries.
type Timeline []Entry
