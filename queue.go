package sweepline

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
)

// ErrEmptyQueue is returned when popping from an empty event queue.
var ErrEmptyQueue = errors.New("empty queue")

// SweepEvent is a position where the set of segments crossing the sweep line changes. Segments holds the segments that start at the position.
type SweepEvent struct {
	Point
	Segments []*Segment
}

func (e *SweepEvent) merge(segs []*Segment) {
	for _, seg := range segs {
		if !slices.Contains(e.Segments, seg) {
			e.Segments = append(e.Segments, seg)
		}
	}
}

func (e *SweepEvent) String() string {
	sb := strings.Builder{}
	sb.WriteString(e.Point.String())
	sb.WriteString("[")
	for i, seg := range e.Segments {
		if i != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(seg.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// SweepEvents is a queue of sweep events ordered by position, with at most one event per position. It is kept in descending order so that the next event is popped from the end.
type SweepEvents []*SweepEvent

// NewSweepEvents returns a queue with one event per distinct endpoint. Each segment is added to the starting set of the event at its left endpoint.
func NewSweepEvents(segs []*Segment) *SweepEvents {
	q := make(SweepEvents, 0, 2*len(segs))
	for _, seg := range segs {
		q.Add(&SweepEvent{Point: seg.Left, Segments: []*Segment{seg}})
		q.Add(&SweepEvent{Point: seg.Right})
	}
	return &q
}

// search returns the index of the first event that is at or before p.
func (q SweepEvents) search(p Point) int {
	return sort.Search(len(q), func(i int) bool {
		return q[i].Point.Compare(p) <= 0
	})
}

// Find returns the index of the event at p, or -1 if there is none.
func (q SweepEvents) Find(p Point) int {
	if i := q.search(p); i < len(q) && q[i].Point.Equals(p) {
		return i
	}
	return -1
}

// Add inserts the event keeping the order. If an event already exists at the same position, the starting segments are merged into it.
func (q *SweepEvents) Add(e *SweepEvent) {
	i := q.search(e.Point)
	if i < len(*q) && (*q)[i].Point.Equals(e.Point) {
		(*q)[i].merge(e.Segments)
		return
	}
	*q = slices.Insert(*q, i, e)
}

// PopMin removes and returns the left-most event.
func (q *SweepEvents) PopMin() (*SweepEvent, error) {
	n := len(*q) - 1
	if n < 0 {
		return nil, ErrEmptyQueue
	}
	e := (*q)[n]
	(*q)[n] = nil
	*q = (*q)[:n]
	return e, nil
}

// Peek returns the left-most event without removing it, or nil.
func (q SweepEvents) Peek() *SweepEvent {
	if len(q) == 0 {
		return nil
	}
	return q[len(q)-1]
}

// Empty returns true if there are no events left.
func (q SweepEvents) Empty() bool {
	return len(q) == 0
}

// Len returns the number of events.
func (q SweepEvents) Len() int {
	return len(q)
}

func (q SweepEvents) Print(w io.Writer) {
	for k := len(q) - 1; 0 <= k; k-- {
		fmt.Fprintln(w, len(q)-1-k, q[k])
	}
}

func (q SweepEvents) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
