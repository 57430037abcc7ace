package expr

import "math"

// binding carries the arguments of a single call through evaluation.
type binding struct {
	idx  map[string]int
	args []float64
}

// eval evaluates the subtree rooted at n. Arithmetic follows float64 rules,
// so there is no error path; Bind guarantees every nodeName resolves.
func (n *node) eval(b *binding) float64 {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeName:
		k, ok := b.idx[n.name]
		if !ok {
			panic("expr: unbound name " + n.name)
		}
		return b.args[k]
	case nodeCall:
		var args []float64
		for a := n.right; a != nil; a = a.right {
			args = append(args, a.left.eval(b))
		}
		return n.fn.Call(args)
	case nodeNeg:
		return -n.left.eval(b)
	case nodeAdd:
		return n.left.eval(b) + n.right.eval(b)
	case nodeSub:
		return n.left.eval(b) - n.right.eval(b)
	case nodeMul:
		return n.left.eval(b) * n.right.eval(b)
	case nodeDiv:
		return n.left.eval(b) / n.right.eval(b)
	case nodePow:
		return math.Pow(n.left.eval(b), n.right.eval(b))
	case nodeNop:
		return n.left.eval(b)
	default:
		panic("expr: invalid node kind " + n.kind.String())
	}
}
