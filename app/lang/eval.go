package lang

// Eval reduces the tree to a single Rational, children first. The first
// overflow or division by zero aborts the evaluation.
func (t *Tree) Eval(p Precision) (Rational, error) {
	if t == nil || len(t.nodes) == 0 {
		return Rational{}, syntaxErr(KindEmpty, -1, "expression is empty")
	}
	if err := p.Validate(); err != nil {
		return Rational{}, err
	}
	return t.eval(t.root, p)
}

func (t *Tree) eval(id NodeID, p Precision) (Rational, error) {
	n := t.nodes[id]

	switch n.Kind {
	case NodeLiteral:
		return n.Value, nil

	case NodeNegate:
		v, err := t.eval(n.Left, p)
		if err != nil {
			return Rational{}, err
		}
		return v.Negate(), nil

	case NodeAdd, NodeSubtract, NodeMultiply, NodeDivide:
		left, err := t.eval(n.Left, p)
		if err != nil {
			return Rational{}, err
		}
		right, err := t.eval(n.Right, p)
		if err != nil {
			return Rational{}, err
		}
		switch n.Kind {
		case NodeAdd:
			return p.Add(left, right)
		case NodeSubtract:
			return p.Sub(left, right)
		case NodeMultiply:
			return p.Mul(left, right)
		default:
			return p.Div(left, right)
		}

	default:
		return Rational{}, &Error{Kind: KindInternal, Pos: -1, Msg: "unknown node type"}
	}
}

// Evaluate lexes, parses and evaluates a single line.
func Evaluate(line string, p Precision) (Rational, error) {
	tree, err := ParseLine(line, p)
	if err != nil {
		return Rational{}, err
	}
	return tree.Eval(p)
}
