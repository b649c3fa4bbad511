package bintree

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// side of a parent a new node is attached to.
type side int

const (
	leftSide side = iota
	rightSide
)

func (s side) String() string {
	if s == leftSide {
		return "left"
	}

	return "right"
}

// builder holds the mutable construction state shared by all builders.
type builder struct {
	st  BuildState
	rec *trace.Recorder[BuildState]
}

func newBuilder(inputs [][]Slot, description string) *builder {
	b := &builder{st: BuildState{Tree: Tree{Root: None}, Inputs: inputs}}
	b.rec = trace.NewRecorder(b.st, description)

	return b
}

// create appends a detached node and records its creation.
func (b *builder) create(value int, why string, hl ...trace.Highlight) int {
	id := len(b.st.Tree.Nodes)
	b.st.Tree.Nodes = append(b.st.Tree.Nodes, Node{ID: id, Value: value, Left: None, Right: None})
	if b.st.Tree.Root == None {
		b.st.Tree.Root = id
	}
	b.rec.Record(b.st, fmt.Sprintf("create node %d with value %d (%s)", id, value, why),
		append(hl, trace.Indices(trace.RoleCurrent, id))...)

	return id
}

// attach links child under parent and records the attachment.
func (b *builder) attach(parent, child int, s side) {
	p := &b.st.Tree.Nodes[parent]
	if s == leftSide {
		p.Left = child
	} else {
		p.Right = child
	}
	b.rec.Record(b.st,
		fmt.Sprintf("attach node %d (value %d) as %s child of node %d (value %d)",
			child, b.st.Tree.Nodes[child].Value, s, parent, p.Value),
		trace.Indices(trace.RoleCurrent, child), trace.Indices(trace.RoleSelected, parent))
}

func (b *builder) finish() *trace.Trace[BuildState] {
	t := b.st.Tree

	return b.rec.Finish(b.st, fmt.Sprintf("tree built: %d nodes, height %d, root value %d",
		t.Len(), t.Height(), t.Nodes[t.Root].Value), trace.Indices(trace.RoleCurrent, t.Root))
}

// FromLevelOrder builds a tree from level-order slots where Null marks a
// missing child. Slots after the last node that can take children must be
// null.
func FromLevelOrder(slots []Slot) (*trace.Trace[BuildState], error) {
	if len(slots) == 0 {
		return nil, ErrEmptyInput
	}
	if !slots[0].Present {
		return nil, ErrNullRoot
	}
	if err := checkLevelOrder(slots); err != nil {
		return nil, err
	}

	b := newBuilder([][]Slot{append([]Slot(nil), slots...)},
		fmt.Sprintf("build from level order %s", formatSlots(slots)))
	at := func(i int) trace.Highlight { return trace.Cells(trace.RoleRange, trace.Cell{Row: 0, Col: i}) }

	queue := []int{b.create(slots[0].Value, "root from slot 0", at(0))}
	for i := 1; len(queue) > 0 && i < len(slots); {
		parent := queue[0]
		queue = queue[1:]
		for _, s := range [2]side{leftSide, rightSide} {
			if i >= len(slots) {
				break
			}
			if !slots[i].Present {
				b.rec.Record(b.st, fmt.Sprintf("slot %d is null: node %d has no %s child", i, parent, s),
					at(i), trace.Indices(trace.RoleSelected, parent))
				i++

				continue
			}
			child := b.create(slots[i].Value, fmt.Sprintf("slot %d", i), at(i))
			b.attach(parent, child, s)
			queue = append(queue, child)
			i++
		}
	}

	return b.finish(), nil
}

// checkLevelOrder simulates the queue on slot presence only, so that a
// non-null slot without a parent is rejected before any step.
func checkLevelOrder(slots []Slot) error {
	parents := 1
	i := 1
	for parents > 0 && i < len(slots) {
		parents--
		for k := 0; k < 2 && i < len(slots); k++ {
			if slots[i].Present {
				parents++
			}
			i++
		}
	}
	for ; i < len(slots); i++ {
		if slots[i].Present {
			return errors.Wrapf(ErrDanglingSlot, "slot %d (value %d)", i, slots[i].Value)
		}
	}

	return nil
}

// FromPreIn rebuilds a tree from its preorder and inorder traversals.
func FromPreIn(pre, in []int) (*trace.Trace[BuildState], error) {
	idx, err := checkPair(pre, in)
	if err != nil {
		return nil, err
	}
	if err = checkShape(pre, idx, false); err != nil {
		return nil, err
	}
	b := newBuilder([][]Slot{Slots(pre...), Slots(in...)},
		fmt.Sprintf("build from preorder %v and inorder %v", pre, in))
	p := &pairBuilder{builder: b, idx: idx, roots: pre, rootRow: 0}
	p.recordIndex(in)

	next := 0
	var rec func(lo, hi, parent int, s side)
	rec = func(lo, hi, parent int, s side) {
		if lo > hi {
			return
		}
		pos := next
		next++
		k := p.split(pos, lo, hi, parent, s)
		id := p.nodeAt[k]
		rec(lo, k-1, id, leftSide)
		rec(k+1, hi, id, rightSide)
	}
	rec(0, len(in)-1, None, leftSide)

	return b.finish(), nil
}

// FromInPost rebuilds a tree from its inorder and postorder traversals.
// Postorder is consumed from the end, so right subtrees are built first.
func FromInPost(in, post []int) (*trace.Trace[BuildState], error) {
	idx, err := checkPair(post, in)
	if err != nil {
		return nil, err
	}
	if err = checkShape(post, idx, true); err != nil {
		return nil, err
	}
	b := newBuilder([][]Slot{Slots(in...), Slots(post...)},
		fmt.Sprintf("build from inorder %v and postorder %v", in, post))
	p := &pairBuilder{builder: b, idx: idx, roots: post, rootRow: 1}
	p.recordIndex(in)

	next := len(post) - 1
	var rec func(lo, hi, parent int, s side)
	rec = func(lo, hi, parent int, s side) {
		if lo > hi {
			return
		}
		pos := next
		next--
		k := p.split(pos, lo, hi, parent, s)
		id := p.nodeAt[k]
		rec(k+1, hi, id, rightSide)
		rec(lo, k-1, id, leftSide)
	}
	rec(0, len(in)-1, None, leftSide)

	return b.finish(), nil
}

// pairBuilder carries the traversal-pair reconstruction state.
type pairBuilder struct {
	*builder
	idx     map[int]int // value → inorder position
	roots   []int       // preorder or postorder
	rootRow int         // Inputs row of roots; inorder is the other row
	nodeAt  map[int]int // inorder position → node id
}

func (p *pairBuilder) inRow() int { return 1 - p.rootRow }

func (p *pairBuilder) recordIndex(in []int) {
	p.nodeAt = make(map[int]int, len(in))
	pairs := make([]string, len(in))
	for i, v := range in {
		pairs[i] = fmt.Sprintf("%d→%d", v, i)
	}
	p.rec.Record(p.st, fmt.Sprintf("index inorder positions once: %v", pairs),
		trace.Cells(trace.RoleRange, rowCells(p.inRow(), 0, len(in)-1)...))
}

// split records the division of inorder[lo..hi] around the root taken from
// roots[pos], creates the root node and attaches it to parent.
func (p *pairBuilder) split(pos, lo, hi, parent int, s side) int {
	v := p.roots[pos]
	k := p.idx[v]
	name := "preorder"
	if p.rootRow == 1 {
		name = "postorder"
	}
	p.rec.Record(p.st,
		fmt.Sprintf("%s[%d]=%d is the root of inorder[%d..%d]; it sits at inorder %d: left part %s, right part %s",
			name, pos, v, lo, hi, k, part(lo, k-1), part(k+1, hi)),
		trace.Cells(trace.RoleRange, rowCells(p.inRow(), lo, hi)...),
		trace.Cells(trace.RolePivot, trace.Cell{Row: p.inRow(), Col: k}),
		trace.Cells(trace.RoleCurrent, trace.Cell{Row: p.rootRow, Col: pos}))

	id := p.create(v, fmt.Sprintf("%s[%d]", name, pos))
	p.nodeAt[k] = id
	if parent != None {
		p.attach(parent, id, s)
	}

	return k
}

// checkPair validates a traversal pair and returns the inorder index.
func checkPair(order, in []int) (map[int]int, error) {
	if len(order) == 0 || len(in) == 0 {
		return nil, ErrEmptyInput
	}
	if len(order) != len(in) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d vs %d values", len(order), len(in))
	}
	idx := make(map[int]int, len(in))
	for i, v := range in {
		if _, dup := idx[v]; dup {
			return nil, errors.Wrapf(ErrDuplicateValue, "inorder value %d", v)
		}
		idx[v] = i
	}
	seen := make(map[int]bool, len(order))
	for _, v := range order {
		if seen[v] {
			return nil, errors.Wrapf(ErrDuplicateValue, "value %d", v)
		}
		seen[v] = true
		if _, ok := idx[v]; !ok {
			return nil, errors.Wrapf(ErrMismatchedSets, "value %d missing from inorder", v)
		}
	}

	return idx, nil
}

// checkShape replays the reconstruction without recording it. Every root
// taken from order must fall inside the inorder range it is meant to split;
// otherwise the two traversals describe no single tree. post consumes order
// from the end, right subtree first.
func checkShape(order []int, idx map[int]int, post bool) error {
	next, dir := 0, 1
	if post {
		next, dir = len(order)-1, -1
	}
	var rec func(lo, hi int) error
	rec = func(lo, hi int) error {
		if lo > hi {
			return nil
		}
		v := order[next]
		next += dir
		k := idx[v]
		if k < lo || k > hi {
			return errors.Wrapf(ErrInconsistentTraversals,
				"value %d sits at inorder %d, outside inorder[%d..%d]", v, k, lo, hi)
		}
		if post {
			if err := rec(k+1, hi); err != nil {
				return err
			}

			return rec(lo, k-1)
		}
		if err := rec(lo, k-1); err != nil {
			return err
		}

		return rec(k+1, hi)
	}

	return rec(0, len(order)-1)
}

// FromSorted builds a height-balanced BST from non-decreasing values,
// taking the middle element lo+(hi-lo)/2 of every range as its root.
func FromSorted(values []int) (*trace.Trace[BuildState], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return nil, errors.Wrapf(ErrNotSorted, "values[%d]=%d < values[%d]=%d", i, values[i], i-1, values[i-1])
		}
	}
	b := newBuilder([][]Slot{Slots(values...)}, fmt.Sprintf("build a balanced BST from sorted %v", values))

	var rec func(lo, hi, parent int, s side)
	rec = func(lo, hi, parent int, s side) {
		if lo > hi {
			return
		}
		mid := lo + (hi-lo)/2
		b.rec.Record(b.st,
			fmt.Sprintf("range [%d..%d]: middle index %d, value %d becomes the subtree root", lo, hi, mid, values[mid]),
			trace.Cells(trace.RoleRange, rowCells(0, lo, hi)...),
			trace.Cells(trace.RolePivot, trace.Cell{Row: 0, Col: mid}))
		id := b.create(values[mid], fmt.Sprintf("values[%d]", mid))
		if parent != None {
			b.attach(parent, id, s)
		}
		rec(lo, mid-1, id, leftSide)
		rec(mid+1, hi, id, rightSide)
	}
	rec(0, len(values)-1, None, leftSide)

	return b.finish(), nil
}

// part renders an inorder range for split descriptions.
func part(lo, hi int) string {
	if lo > hi {
		return "empty"
	}

	return fmt.Sprintf("[%d..%d]", lo, hi)
}

func rowCells(row, lo, hi int) []trace.Cell {
	var out []trace.Cell
	for c := lo; c <= hi; c++ {
		out = append(out, trace.Cell{Row: row, Col: c})
	}

	return out
}

func formatSlots(slots []Slot) string {
	s := "["
	for i, sl := range slots {
		if i > 0 {
			s += " "
		}
		if sl.Present {
			s += fmt.Sprint(sl.Value)
		} else {
			s += "null"
		}
	}

	return s + "]"
}
