// Package segment splits a document into disjoint spans annotated with the
// matches covering each span, which drives report highlighting.
package segment

import (
	"sort"

	"plagscan/internal/checker"
)

// Segment is a maximal contiguous span [Start, End) of the examined
// document over which the same set of matches is active. Matches is a
// snapshot in activation order; spans outside every match carry none.
type Segment struct {
	Start   int
	End     int
	Text    string
	Matches []checker.Match
}

type eventKind int

const (
	eventEnd eventKind = iota // ends sort before starts at equal positions
	eventStart
)

type event struct {
	pos   int
	kind  eventKind
	match *checker.Match
}

// Split partitions content into ordered, contiguous, non-overlapping
// segments using a sweep over match start/end events. The concatenation of
// all segment texts equals content exactly. Empty content with no matches
// yields nil.
func Split(content string, matches []checker.Match) []Segment {
	events := make([]event, 0, 2*len(matches))
	for i := range matches {
		m := &matches[i]
		events = append(events, event{pos: m.InputStart, kind: eventStart, match: m})
		events = append(events, event{pos: m.InputEnd, kind: eventEnd, match: m})
	}
	// Ends before starts at the same position, so a match ending exactly
	// where another begins never overlaps it.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		return events[i].kind < events[j].kind
	})

	if len(events) == 0 {
		if content == "" {
			return nil
		}
		return []Segment{{Start: 0, End: len(content), Text: content}}
	}

	var segments []Segment
	cursor := 0
	active := activeSet{}

	for _, ev := range events {
		if ev.pos > cursor {
			segments = append(segments, Segment{
				Start:   cursor,
				End:     ev.pos,
				Text:    content[cursor:ev.pos],
				Matches: active.snapshot(),
			})
			cursor = ev.pos
		}
		if ev.kind == eventStart {
			active.add(ev.match)
		} else {
			active.remove(ev.match)
		}
	}

	if cursor < len(content) {
		segments = append(segments, Segment{
			Start: cursor,
			End:   len(content),
			Text:  content[cursor:],
		})
	}
	return segments
}

// activeSet keeps the currently active matches in activation order, keyed
// by match identity so two matches with identical spans stay distinct.
type activeSet []*checker.Match

func (s *activeSet) add(m *checker.Match) {
	for _, cur := range *s {
		if cur == m {
			return
		}
	}
	*s = append(*s, m)
}

func (s *activeSet) remove(m *checker.Match) {
	for i, cur := range *s {
		if cur == m {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// snapshot copies the active matches so later sweep mutations cannot
// alter segments already emitted.
func (s activeSet) snapshot() []checker.Match {
	if len(s) == 0 {
		return nil
	}
	out := make([]checker.Match, len(s))
	for i, m := range s {
		out[i] = *m
	}
	return out
}
