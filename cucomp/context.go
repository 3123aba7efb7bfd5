// SPDX-License-Identifier: MIT
// Package: cucomp

package cucomp

import "gonum.org/v1/gonum/mat"

// Context is an evaluation session over a frozen complex graph, memoizing
// the derived covariance per node identity. As with ucomp.Context, one
// Context belongs to one evaluator; share graphs, not sessions.
type Context struct {
	cache map[Component]Covariance
}

// NewContext creates an evaluation session with an empty cache.
func NewContext() *Context {
	return &Context{cache: make(map[Component]Covariance)}
}

// Uncertainty derives the covariance matrix of comp.
//
// The algorithm is the Jacobian generalization of the real case:
//
//  1. Topologically order the subgraph below comp (iterative traversal,
//     defensive cycle detection).
//  2. Root-first, accumulate A(node) = ∂comp/∂node as a 2×2 real matrix:
//     A(comp) = I, and each operand receives A(parent)·J_operand summed
//     over all parent edges. Shared leaves therefore accumulate the sum
//     of their path Jacobians before being weighed, which yields exact
//     cancellation for expressions like z − z over one leaf.
//  3. Combine the leaves: Cov(comp) = Σ_leaf A(leaf)·Cov(leaf)·A(leaf)ᵀ.
//
// The result exposes the real-part variance, imaginary-part variance and
// their covariance. Results are cached per node for this session.
//
// Returns ErrCyclicGraph if a node is revisited while on the active
// evaluation stack.
func (c *Context) Uncertainty(comp Component) (Covariance, error) {
	if cov, ok := c.cache[comp]; ok {
		return cov, nil
	}
	if in, ok := comp.(*Input); ok {
		c.cache[comp] = in.cov
		return in.cov, nil
	}

	order, err := topoOrder(comp)
	if err != nil {
		return Covariance{}, err
	}

	acc := make(map[Component]*mat.Dense, len(order))
	acc[comp] = mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	for i := len(order) - 1; i >= 0; i-- {
		node, ok := order[i].(*Operation)
		if !ok {
			continue
		}
		a := acc[node]
		if a == nil {
			continue
		}
		for j, arg := range node.args {
			var prod mat.Dense
			prod.Mul(a, node.jacobian(j))

			if cur := acc[arg]; cur != nil {
				cur.Add(cur, &prod)
			} else {
				acc[arg] = &prod
			}
		}
	}

	var vrr, vii, vri float64
	var tmp, term mat.Dense
	for node, a := range acc {
		in, ok := node.(*Input)
		if !ok || in.cov.IsZero() {
			continue
		}

		tmp.Reset()
		term.Reset()
		tmp.Mul(a, in.cov.Matrix())
		term.Mul(&tmp, a.T())

		vrr += term.At(0, 0)
		vii += term.At(1, 1)
		// Symmetrize: float error can skew the off-diagonal pair.
		vri += (term.At(0, 1) + term.At(1, 0)) / 2
	}

	cov := Covariance{vrr: vrr, vii: vii, vri: vri}
	c.cache[comp] = cov

	return cov, nil
}

const (
	colorWhite = iota
	colorGray
	colorBlack
)

type frame struct {
	node Component
	next int
}

// topoOrder returns the nodes reachable from root in postorder, visiting
// each shared node once; gray re-entry reports ErrCyclicGraph.
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
