package ucomp

import "math"

// Context is an evaluation session over a frozen graph. It memoizes the
// standard uncertainty per node identity for the lifetime of the session;
// the cache is never shared between Contexts. A Context is not safe for
// concurrent use — create one per goroutine instead (the graphs
// themselves are immutable and freely shareable).
type Context struct {
	cache map[Component]float64
}

// NewContext creates an evaluation session with an empty cache.
func NewContext() *Context {
	return &Context{cache: make(map[Component]float64)}
}

// Uncertainty derives the standard uncertainty of comp.
//
// For an input leaf, this is the declared uncertainty. For an operation
// node the session:
//
//  1. Orders the subgraph below comp topologically with an explicit
//     iterative traversal (no recursion, so graph depth is bounded only
//     by memory), detecting cycles defensively.
//  2. Accumulates the sensitivity of comp to every node by walking the
//     order root-first: sens(comp, operand) sums, over each parent edge,
//     the parent's accumulated sensitivity times the edge's partial
//     derivative. A leaf reachable along several paths receives the SUM
//     of its path sensitivities, which is what makes shared-input
//     correlation (and x−x cancellation) come out right.
//  3. Combines the leaves: variance = Σ sens(comp, leaf)²·u(leaf)²,
//     uncertainty = √variance. Leaves are mutually independent by model.
//
// Results are cached per node identity within this session; the cached
// value is returned on repeated queries.
//
// Returns ErrCyclicGraph if a node is revisited while on the active
// evaluation stack (never triggered by graphs built via this package).
func (c *Context) Uncertainty(comp Component) (float64, error) {
	if u, ok := c.cache[comp]; ok {
		return u, nil
	}
	if in, ok := comp.(*Input); ok {
		c.cache[comp] = in.sigma
		return in.sigma, nil
	}

	order, err := topoOrder(comp)
	if err != nil {
		return 0, err
	}

	// Root-first pass: reversed postorder is a topological order, so a
	// node's accumulated sensitivity is complete before it is expanded.
	sens := make(map[Component]float64, len(order))
	sens[comp] = 1
	for i := len(order) - 1; i >= 0; i-- {
		node, ok := order[i].(*Operation)
		if !ok {
			continue
		}
		s := sens[node]
		if s == 0 {
			continue
		}
		parts := node.partials()
		for j, arg := range node.args {
			sens[arg] += s * parts[j]
		}
	}

	var variance float64
	for node, s := range sens {
		if in, ok := node.(*Input); ok && in.sigma != 0 {
			variance += s * s * in.sigma * in.sigma
		}
	}

	u := math.Sqrt(variance)
	c.cache[comp] = u

	return u, nil
}

// traversal colors for the iterative DFS.
const (
	colorWhite = iota // unvisited
	colorGray         // on the active stack
	colorBlack        // finished
)

type frame struct {
	node Component
	next int
}

// topoOrder returns the nodes reachable from root in postorder (operands
// before parents), visiting each shared node exactly once.
// Returns ErrCyclicGraph when a gray node is re-entered.
func topoOrder(root Component) ([]Component, error) {
	color := map[Component]int{root: colorGray}
	stack := []frame{{node: root}}

	var post []Component
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		ops := f.node.operands()

		if f.next < len(ops) {
			child := ops[f.next]
			f.next++

			switch color[child] {
			case colorGray:
				return nil, ErrCyclicGraph
			case colorWhite:
				color[child] = colorGray
				stack = append(stack, frame{node: child})
			}

			continue
		}

		color[f.node] = colorBlack
		post = append(post, f.node)
		stack = stack[:len(stack)-1]
	}

	return post, nil
}
