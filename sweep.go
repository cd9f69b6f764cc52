package sweepline

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// Options are the options for finding intersections.
type Options struct {
	// Debug receives a trace of every event and the sweep status after it is handled.
	Debug io.Writer
}

// DefaultOptions are the default options.
var DefaultOptions = Options{}

// Intersection is a point where two or more segments meet, together with the IDs of those segments in ascending order.
type Intersection struct {
	Point
	IDs []int
}

func (z Intersection) String() string {
	return fmt.Sprintf("%v%v", z.Point, z.IDs)
}

// Intersections returns all points where two or more segments intersect, in sweep order (left to right, then bottom to top). Each point is reported once, regardless of how many segments pass through it. Segments that touch at their endpoints intersect, and collinear segments that overlap intersect at both ends of the overlap.
func Intersections(segs []Segment) ([]Point, error) {
	zs, err := FindIntersections(segs, nil)
	if err != nil {
		return nil, err
	}
	ps := make([]Point, len(zs))
	for i, z := range zs {
		ps[i] = z.Point
	}
	return ps, nil
}

// FindIntersections returns all intersections together with the segments that meet at each of them. It runs the Bentley-Ottmann algorithm with O((n+k) log n) comparisons, with n the number of segments and k the number of intersections. Since the event queue is a sorted slice, adding an event also moves up to O(n+k) pointers. Segments are validated first and no intersections are returned if any is invalid.
//
// Computations use floating point with tolerance Epsilon. Ill-conditioned configurations, such as nearly parallel segments, may result in missed intersections but never in failure.
func FindIntersections(segs []Segment, opts *Options) ([]Intersection, error) {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	ss := make([]Segment, len(segs))
	for i, seg := range segs {
		if err := seg.Validate(); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		ss[i] = seg
	}

	s := newSweeper(ss, opts)
	return s.run(), nil
}

// sweeper holds the state of a single run.
type sweeper struct {
	queue  *SweepEvents
	status *SweepStatus
	active map[*Segment]*SweepSegment // current remaining part of segments in the status
	index  map[*Segment]int
	zs     []Intersection
	debug  io.Writer
}

func newSweeper(segs []Segment, opts *Options) *sweeper {
	ptrs := make([]*Segment, len(segs))
	index := make(map[*Segment]int, len(segs))
	for i := range segs {
		ptrs[i] = &segs[i]
		index[&segs[i]] = i
	}
	return &sweeper{
		queue:  NewSweepEvents(ptrs),
		status: NewSweepStatus(),
		active: make(map[*Segment]*SweepSegment, len(segs)),
		index:  index,
		debug:  opts.Debug,
	}
}

func (s *sweeper) run() []Intersection {
	for {
		event, err := s.queue.PopMin()
		if errors.Is(err, ErrEmptyQueue) {
			return s.zs
		} else if err != nil {
			panic(err)
		}
		s.handle(event)
	}
}

func (s *sweeper) handle(event *SweepEvent) {
	p := event.Point
	s.status.Advance(p)
	if s.debug != nil {
		fmt.Fprintln(s.debug, "---", event)
	}

	// all segments starting at, ending at, or passing through p
	members := make([]*Segment, 0, len(event.Segments))
	for _, seg := range event.Segments {
		if _, ok := s.active[seg]; ok || seg.Left.Equals(p) {
			members = append(members, seg)
		}
	}
	for _, item := range s.status.Through(p) {
		if !slices.Contains(members, item.Segment) {
			members = append(members, item.Segment)
		}
	}

	if 1 < len(members) {
		ids := make([]int, len(members))
		for i, seg := range members {
			ids[i] = seg.ID
		}
		slices.Sort(ids)
		s.zs = append(s.zs, Intersection{p, ids})
		if s.debug != nil {
			fmt.Fprintln(s.debug, "  intersection", s.zs[len(s.zs)-1])
		}
	}

	// classify: ending at p (R), continuing through p (C), starting at p (L)
	var ending, continuing, starting []*SweepSegment
	for _, seg := range members {
		if item, ok := s.active[seg]; ok {
			if seg.Right.Equals(p) {
				ending = append(ending, item)
			} else {
				continuing = append(continuing, item)
			}
		} else if seg.Left.Equals(p) {
			starting = append(starting, newSweepSegment(seg, s.index[seg]))
		}
	}

	for _, item := range ending {
		s.status.Remove(item)
		delete(s.active, item.Segment)
	}
	for _, item := range continuing {
		s.status.Remove(item)
	}

	// continuing segments are split at p, they now start at p as well
	for _, item := range continuing {
		if 1 < len(members) && !item.Start.Equals(p) {
			item = item.Split(p)
		}
		starting = append(starting, item)
	}
	for _, item := range starting {
		s.status.Insert(item)
		s.active[item.Segment] = item
	}

	if len(starting) == 0 {
		if 0 < len(ending) {
			below, above := s.status.Bracket(p)
			s.probe(below, above, p)
		}
	} else {
		present := s.status.PresentSubset(starting)
		lowest, highest := present[0], present[len(present)-1]
		below, _ := s.status.Neighbors(lowest)
		_, above := s.status.Neighbors(highest)
		s.probe(below, lowest, p)
		s.probe(highest, above, p)
	}

	if s.debug != nil {
		fmt.Fprintln(s.debug, s.status)
	}
}

// probe adds an event for the intersection of a and b if it lies strictly after the sweep position p. If an event already exists at that point, a and b are added to it.
func (s *sweeper) probe(a, b *SweepSegment, p Point) {
	if a == nil || b == nil {
		return
	}
	if b.index < a.index {
		a, b = b, a // intersection is computed the same regardless of order
	}
	z, ok := IntersectionPoint(*a.Segment, *b.Segment)
	if !ok {
		return
	} else if z.Compare(a.Start) <= 0 || z.Compare(b.Start) <= 0 {
		return // before or at the remaining parts, already handled
	} else if z.Compare(p) <= 0 {
		return
	}
	if s.debug != nil {
		fmt.Fprintln(s.debug, "  event", z, "for", a, b)
	}
	s.queue.Add(&SweepEvent{Point: z, Segments: []*Segment{a.Segment, b.Segment}})
}
