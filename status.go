package sweepline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// SweepSegment is the part of a segment that remains to the right of the sweep line. Splitting a segment at an intersection creates a new SweepSegment that replaces the previous one in the status.
type SweepSegment struct {
	*Segment
	Start Point    // current left endpoint
	Kind  Endpoint // whether Start is an original endpoint

	index int        // position in the input, distinguishes overlapping segments
	node  *SweepNode // used for fast accessing btree node in O(1) (instead of Find in O(log n))
}

func newSweepSegment(seg *Segment, index int) *SweepSegment {
	return &SweepSegment{
		Segment: seg,
		Start:   seg.Left,
		Kind:    Exterior,
		index:   index,
	}
}

// Split returns the remaining part of the segment starting at p.
func (s *SweepSegment) Split(p Point) *SweepSegment {
	return &SweepSegment{
		Segment: s.Segment,
		Start:   p,
		Kind:    Interior,
		index:   s.index,
	}
}

// Through returns true if p lies on the remaining part of the segment.
func (s *SweepSegment) Through(p Point) bool {
	return contains(s.Left, s.Right, s.Start, s.Right, p)
}

// y returns the y coordinate at the sweep position. Vertical segments take the sweep position's y clamped to their extent. At its start the segment returns Start.Y exactly, so that all parts split at the same point compare equal there.
func (s *SweepSegment) y(at Point) float64 {
	if s.Vertical() {
		if at.Y < s.Start.Y {
			return s.Start.Y
		} else if s.Right.Y < at.Y {
			return s.Right.Y
		}
		return at.Y
	} else if at.X <= s.Start.X {
		return s.Start.Y
	}
	return s.yAt(at.X)
}

// Member returns true if the segment is in a sweep status.
func (s *SweepSegment) Member() bool {
	return s.node != nil
}

func (s *SweepSegment) String() string {
	return fmt.Sprintf("%d(%v−%v)", s.ID, s.Start, s.Right)
}

////////////////////////////////////////////////////////////////

// SweepOrder compares segments vertically at the sweep position At. Segments that meet at the sweep position are ordered by their direction towards the right (vertical last), and overlapping segments by their position in the input.
type SweepOrder struct {
	At Point
}

func (o SweepOrder) Compare(a, b *SweepSegment) int {
	if a == b {
		return 0
	}
	ya, yb := a.y(o.At), b.y(o.At)
	tol := Epsilon * magnitude(o.At, a.Start, a.Right, b.Start, b.Right)
	if ya+tol < yb {
		return -1
	} else if yb+tol < ya {
		return 1
	} else if c := compareDirection(*a.Segment, *b.Segment); c != 0 {
		return c
	} else if a.index < b.index {
		return -1
	} else if b.index < a.index {
		return 1
	}
	return 0
}

// above returns -1 if the segment is below p at the sweep position, 1 if above, and 0 if it passes through p.
func (o SweepOrder) above(s *SweepSegment, p Point) int {
	if s.Through(p) {
		return 0
	} else if s.y(o.At) < p.Y {
		return -1
	}
	return 1
}

////////////////////////////////////////////////////////////////

// child indices of a SweepNode
const (
	lo = 0 // below
	hi = 1 // above
)

type SweepNode struct {
	parent *SweepNode
	child  [2]*SweepNode
	height int

	*SweepSegment
}

func height(n *SweepNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

// step returns the in-order neighbour in direction dir, or nil.
func (n *SweepNode) step(dir int) *SweepNode {
	if m := n.child[dir]; m != nil {
		for m.child[1-dir] != nil {
			m = m.child[1-dir]
		}
		return m
	}
	for n.parent != nil && n.parent.child[dir] == n {
		n = n.parent
	}
	return n.parent
}

// Prev returns the node directly below, or nil.
func (n *SweepNode) Prev() *SweepNode {
	return n.step(lo)
}

// Next returns the node directly above, or nil.
func (n *SweepNode) Next() *SweepNode {
	return n.step(hi)
}

// side returns which child n is of its parent.
func (n *SweepNode) side() int {
	if n.parent.child[hi] == n {
		return hi
	}
	return lo
}

// path returns the nodes from the root down to n.
func (n *SweepNode) path() []*SweepNode {
	var p []*SweepNode
	for ; n != nil; n = n.parent {
		p = append(p, n)
	}
	slices.Reverse(p)
	return p
}

// before returns true if n comes before m in order.
func (n *SweepNode) before(m *SweepNode) bool {
	if n == m {
		return false
	}
	pn, pm := n.path(), m.path()
	i := 0
	for i < len(pn) && i < len(pm) && pn[i] == pm[i] {
		i++
	}
	if i == len(pn) {
		return pm[i] == n.child[hi] // n is an ancestor of m
	} else if i == len(pm) {
		return pn[i] == m.child[lo] // m is an ancestor of n
	}
	return pn[i] == pn[i-1].child[lo]
}

// balance is positive when the upper subtree is higher.
func (n *SweepNode) balance() int {
	return height(n.child[hi]) - height(n.child[lo])
}

func (n *SweepNode) updateHeight() {
	n.height = 1 + max(height(n.child[lo]), height(n.child[hi]))
}

func (n *SweepNode) Print(w io.Writer, indent int) {
	if n.child[hi] != nil {
		n.child[hi].Print(w, indent+1)
	} else if n.child[lo] != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.SweepSegment)
	if n.child[lo] != nil {
		n.child[lo].Print(w, indent+1)
	} else if n.child[hi] != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

////////////////////////////////////////////////////////////////

// SweepStatus holds the segments crossing the sweep line, ordered from bottom to top at the current sweep position. It is an AVL tree whose nodes point back from their segments, so that removal and neighbour lookup need no comparisons.
type SweepStatus struct {
	root  *SweepNode
	size  int
	order SweepOrder
	pool  *sync.Pool
}

func NewSweepStatus() *SweepStatus {
	return &SweepStatus{
		pool: &sync.Pool{New: func() any { return &SweepNode{} }},
	}
}

// Advance moves the sweep position to p. Events must be processed in non-decreasing order.
func (s *SweepStatus) Advance(p Point) {
	s.order.At = p
}

// At returns the current sweep position.
func (s *SweepStatus) At() Point {
	return s.order.At
}

// Len returns the number of segments in the status.
func (s *SweepStatus) Len() int {
	return s.size
}

func (s *SweepStatus) newNode(item *SweepSegment) *SweepNode {
	n := s.pool.Get().(*SweepNode)
	n.parent = nil
	n.child = [2]*SweepNode{}
	n.height = 1
	n.SweepSegment = item
	n.SweepSegment.node = n
	return n
}

func (s *SweepStatus) returnNode(n *SweepNode) {
	n.SweepSegment.node = nil
	n.SweepSegment = nil // help the GC
	s.pool.Put(n)
}

// replace puts m in the place of n, below n's parent or as the root.
func (s *SweepStatus) replace(n, m *SweepNode) {
	parent := n.parent
	if parent == nil {
		s.root = m
	} else {
		parent.child[n.side()] = m
	}
	if m != nil {
		m.parent = parent
	}
}

// rotate lifts the child of n opposite to dir into the place of n, which moves down to the dir side. It returns the lifted node.
func (s *SweepStatus) rotate(n *SweepNode, dir int) *SweepNode {
	m := n.child[1-dir]
	s.replace(n, m)
	if n.child[1-dir] = m.child[dir]; n.child[1-dir] != nil {
		n.child[1-dir].parent = n
	}
	m.child[dir] = n
	n.parent = m
	n.updateHeight()
	m.updateHeight()
	return m
}

// retrace restores heights and balance from n up to the root.
func (s *SweepStatus) retrace(n *SweepNode) {
	for ; n != nil; n = n.parent {
		n.updateHeight()
		balance := n.balance()
		if -1 <= balance && balance <= 1 {
			continue
		}

		heavy, sign := lo, -1
		if 0 < balance {
			heavy, sign = hi, 1
		}
		if m := n.child[heavy]; m.balance()*sign < 0 {
			// inner grandchild is higher, lift it first
			s.rotate(m, heavy)
		}
		n = s.rotate(n, 1-heavy)
	}
}

func (s *SweepStatus) extreme(dir int) *SweepNode {
	n := s.root
	if n == nil {
		return nil
	}
	for n.child[dir] != nil {
		n = n.child[dir]
	}
	return n
}

// First returns the lowest node, or nil.
func (s *SweepStatus) First() *SweepNode {
	return s.extreme(lo)
}

// Last returns the highest node, or nil.
func (s *SweepStatus) Last() *SweepNode {
	return s.extreme(hi)
}

// Insert adds the segment at its position at the current sweep position. It panics if the segment compares equal to a member, which happens only when it is inserted twice.
func (s *SweepStatus) Insert(item *SweepSegment) *SweepNode {
	var parent *SweepNode
	dir := lo
	for n := s.root; n != nil; n = n.child[dir] {
		cmp := s.order.Compare(item, n.SweepSegment)
		if cmp == 0 {
			panic(fmt.Sprintf("segment %v already in status", item))
		}
		parent, dir = n, lo
		if 0 < cmp {
			dir = hi
		}
	}

	n := s.newNode(item)
	s.size++
	if parent == nil {
		s.root = n
		return n
	}
	parent.child[dir] = n
	n.parent = parent
	s.retrace(parent)
	return n
}

// Remove removes the segment from the status. It is a no-op if the segment is not a member.
func (s *SweepStatus) Remove(item *SweepSegment) {
	n := item.node
	if n == nil {
		return
	}
	s.size--

	if n.child[lo] != nil && n.child[hi] != nil {
		// take the place of the next node, which has no lower child
		m := n.Next()
		n.SweepSegment, m.SweepSegment = m.SweepSegment, n.SweepSegment
		n.SweepSegment.node, m.SweepSegment.node = n, m
		n = m
	}

	m := n.child[lo]
	if m == nil {
		m = n.child[hi]
	}
	parent := n.parent
	s.replace(n, m)
	s.retrace(parent)
	s.returnNode(n)
}

// Neighbors returns the segments directly below and above the given member. Either is nil at the boundary of the status.
func (s *SweepStatus) Neighbors(item *SweepSegment) (*SweepSegment, *SweepSegment) {
	if item.node == nil {
		return nil, nil
	}
	var prev, next *SweepSegment
	if n := item.node.Prev(); n != nil {
		prev = n.SweepSegment
	}
	if n := item.node.Next(); n != nil {
		next = n.SweepSegment
	}
	return prev, next
}

// PresentSubset returns the items that are members of the status, in status order.
func (s *SweepStatus) PresentSubset(items []*SweepSegment) []*SweepSegment {
	present := make([]*SweepSegment, 0, len(items))
	for _, item := range items {
		if item.node != nil && !slices.Contains(present, item) {
			present = append(present, item)
		}
	}
	slices.SortFunc(present, func(a, b *SweepSegment) int {
		if a.node.before(b.node) {
			return -1
		} else if b.node.before(a.node) {
			return 1
		}
		return 0
	})
	return present
}

// Through returns the members that contain p, in status order. The sweep position must be at p.
func (s *SweepStatus) Through(p Point) []*SweepSegment {
	n := s.root
	for n != nil {
		if cmp := s.order.above(n.SweepSegment, p); cmp == 0 {
			break
		} else if 0 < cmp {
			n = n.child[lo]
		} else {
			n = n.child[hi]
		}
	}
	if n == nil {
		return nil
	}

	// segments through p are adjacent
	first := n
	for prev := n.Prev(); prev != nil && prev.Through(p); prev = prev.Prev() {
		first = prev
	}
	items := []*SweepSegment{}
	for m := first; m != nil && m.Through(p); m = m.Next() {
		items = append(items, m.SweepSegment)
	}
	return items
}

// Bracket returns the closest members below and above p that do not contain p. Either is nil at the boundary of the status.
func (s *SweepStatus) Bracket(p Point) (*SweepSegment, *SweepSegment) {
	var below, above *SweepSegment
	for n := s.root; n != nil; {
		if s.order.above(n.SweepSegment, p) < 0 {
			below = n.SweepSegment
			n = n.child[hi]
		} else {
			n = n.child[lo]
		}
	}
	for n := s.root; n != nil; {
		if 0 < s.order.above(n.SweepSegment, p) {
			above = n.SweepSegment
			n = n.child[lo]
		} else {
			n = n.child[hi]
		}
	}
	return below, above
}

// Items returns all members from bottom to top.
func (s *SweepStatus) Items() []*SweepSegment {
	items := make([]*SweepSegment, 0, s.size)
	for n := s.First(); n != nil; n = n.Next() {
		items = append(items, n.SweepSegment)
	}
	return items
}

func (s *SweepStatus) Print(w io.Writer) {
	if s.root == nil {
		fmt.Fprintln(w, "nil")
		return
	}
	s.root.Print(w, 0)
}

func (s *SweepStatus) String() string {
	sb := strings.Builder{}
	s.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
