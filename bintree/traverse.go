package bintree

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// walker holds the mutable traversal state.
type walker struct {
	order Order
	st    WalkState
	rec   *trace.Recorder[WalkState]
}

// Traverse records a traversal of t in the given order. The tree is
// checked first: it must have a root and every node must be reachable
// exactly once.
func Traverse(t Tree, order Order) (*trace.Trace[WalkState], error) {
	if order < PreOrder || order > LevelOrder {
		return nil, ErrUnknownOrder
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	w := &walker{order: order, st: WalkState{Tree: t.Clone()}}
	root := t.Root
	w.rec = trace.NewRecorder(w.st,
		fmt.Sprintf("%s traversal: start at root node %d (value %d)", order, root, t.Nodes[root].Value),
		trace.Indices(trace.RoleCurrent, root))

	if order == LevelOrder {
		w.level()
	} else {
		w.st.Path = []int{root}
		w.depthFirst(root, 0)
	}

	return w.rec.Finish(w.st,
		fmt.Sprintf("%s traversal complete: %v", order, w.st.VisitedValues()),
		trace.Indices(trace.RoleVisited, w.st.Visited...)), nil
}

func (w *walker) node(id int) Node { return w.st.Tree.Nodes[id] }

func (w *walker) visit(id int, where string) {
	w.st.Visited = append(w.st.Visited, id)
	w.rec.Record(w.st,
		fmt.Sprintf("visit node %d (value %d) at %s: order so far %v", id, w.node(id).Value, where, w.st.VisitedValues()),
		trace.Indices(trace.RoleCurrent, id),
		trace.Indices(trace.RoleVisited, w.st.Visited...),
		trace.Indices(trace.RolePath, w.st.Path...),
		trace.Indices(trace.RoleFrontier, w.st.Queue...))
}

func (w *walker) depthFirst(id, depth int) {
	nd := w.node(id)
	where := fmt.Sprintf("depth %d", depth)
	if w.order == PreOrder {
		w.visit(id, where)
	}
	w.descend(nd, nd.Left, leftSide, depth)
	if w.order == InOrder {
		w.visit(id, where)
	}
	w.descend(nd, nd.Right, rightSide, depth)
	if w.order == PostOrder {
		w.visit(id, where)
	}

	w.st.Path = w.st.Path[:len(w.st.Path)-1]
	desc := fmt.Sprintf("return from node %d (value %d) at depth %d", id, nd.Value, depth)
	if len(w.st.Path) > 0 {
		parent := w.st.Path[len(w.st.Path)-1]
		desc += fmt.Sprintf(" to node %d", parent)
		w.rec.Record(w.st, desc, trace.Indices(trace.RoleCurrent, parent), trace.Indices(trace.RolePath, w.st.Path...))

		return
	}
	w.rec.Record(w.st, desc, trace.Indices(trace.RoleVisited, w.st.Visited...))
}

func (w *walker) descend(from Node, child int, s side, depth int) {
	if child == None {
		return
	}
	w.st.Path = append(w.st.Path, child)
	w.rec.Record(w.st,
		fmt.Sprintf("descend %s from node %d (value %d) to node %d (value %d) at depth %d",
			s, from.ID, from.Value, child, w.node(child).Value, depth+1),
		trace.Indices(trace.RoleCurrent, child), trace.Indices(trace.RolePath, w.st.Path...))
	w.depthFirst(child, depth+1)
}

func (w *walker) level() {
	type item struct{ id, level int }
	queue := []item{{w.st.Tree.Root, 0}}
	w.st.Queue = []int{w.st.Tree.Root}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		w.st.Queue = w.st.Queue[1:]
		w.visit(it.id, fmt.Sprintf("level %d", it.level))

		nd := w.node(it.id)
		for _, c := range [2]struct {
			id int
			s  side
		}{{nd.Left, leftSide}, {nd.Right, rightSide}} {
			if c.id == None {
				continue
			}
			queue = append(queue, item{c.id, it.level + 1})
			w.st.Queue = append(w.st.Queue, c.id)
			w.rec.Record(w.st,
				fmt.Sprintf("enqueue %s child node %d (value %d) of node %d at level %d: queue %v",
					c.s, c.id, w.node(c.id).Value, it.id, it.level+1, w.queueValues()),
				trace.Indices(trace.RoleCandidate, c.id), trace.Indices(trace.RoleFrontier, w.st.Queue...))
		}
	}
}

func (w *walker) queueValues() []int {
	out := make([]int, len(w.st.Queue))
	for i, id := range w.st.Queue {
		out[i] = w.node(id).Value
	}

	return out
}
