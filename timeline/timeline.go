package timeline

import "fmt"

// Validate checks the structural invariants of the whole tree: every
// interval has 0 ≤ StartTime ≤ EndTime, siblings are sorted by StartTime,
// and every child lies within its parent's interval.
//
// Complexity: O(total entries).
func (t Timeline) Validate() error {
	return t.validate(nil)
}

func (t Timeline) validate(parent *Entry) error {
	var prevStart float64
	for i := range t {
		e := &t[i]
		if e.StartTime < 0 || e.EndTime < e.StartTime {
			return fmt.Errorf("%w: %q [%f, %f]", ErrInvalidInterval, e.Text, e.StartTime, e.EndTime)
		}
		if i > 0 && e.StartTime < prevStart {
			return fmt.Errorf("%w: %q starts at %f before its predecessor at %f",
				ErrUnsortedSiblings, e.Text, e.StartTime, prevStart)
		}
		prevStart = e.StartTime
		if parent != nil && (e.StartTime < parent.StartTime || e.EndTime > parent.EndTime) {
			return fmt.Errorf("%w: %q [%f, %f] outside %q [%f, %f]",
				ErrChildOutOfBounds, e.Text, e.StartTime, e.EndTime,
				parent.Text, parent.StartTime, parent.EndTime)
		}
		if err := e.Timeline.validate(e); err != nil {
			return err
		}
	}

	return nil
}

// Duration returns the end time of the last entry, i.e. the span the
// timeline covers from zero. An empty timeline has zero duration.
func (t Timeline) Duration() float64 {
	if len(t) == 0 {
		return 0
	}

	return t[len(t)-1].EndTime
}

// Rescale returns a deep copy of the timeline with every timestamp
// multiplied by factor. A factor of 0 collapses all intervals to zero;
// the caller guards against NaN factors.
func (t Timeline) Rescale(factor float64) Timeline {
	if t == nil {
		return nil
	}

	out := make(Timeline, len(t))
	for i, e := range t {
		out[i] = Entry{
			Type:      e.Type,
			Text:      e.Text,
			StartTime: e.StartTime * factor,
			EndTime:   e.EndTime * factor,
			Timeline:  e.Timeline.Rescale(factor),
		}
	}

	return out
}

// Walk visits every entry in pre-order, passing its nesting depth.
func (t Timeline) Walk(visit func(e Entry, depth int)) {
	t.walk(visit, 0)
}

func (t Timeline) walk(visit func(e Entry, depth int), depth int) {
	for _, e := range t {
		visit(e, depth)
		e.Timeline.walk(visit, depth+1)
	}
}

// FlattenToWords collapses clause/segment/sentence/token nesting into a
// flat word-level timeline. Words are collected in pre-order from any
// depth; within each word only phone descendants are kept (flattened one
// level deep under the word).
//
// Complexity: O(total entries).
func FlattenToWords(t Timeline) Timeline {
	var words Timeline
	collectWords(t, &words)

	return words
}

func collectWords(t Timeline, out *Timeline) {
	for _, e := range t {
		if e.Type == EntryTypeWord {
			word := Entry{
				Type:      EntryTypeWord,
				Text:      e.Text,
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
			}
			collectPhones(e.Timeline, &word.Timeline)
			*out = append(*out, word)
			continue
		}
		collectWords(e.Timeline, out)
	}
}

func collectPhones(t Timeline, out *Timeline) {
	for _, e := range t {
		if e.Type == EntryTypePhone {
			*out = append(*out, Entry{
				Type:      EntryTypePhone,
				Text:      e.Text,
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
			})
			continue
		}
		collectPhones(e.Timeline, out)
	}
}
