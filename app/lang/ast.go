package lang

import "strings"

// NodeKind tags the variant held by a Node.
type NodeKind uint8

const (
	NodeLiteral NodeKind = iota
	NodeNegate
	NodeAdd
	NodeSubtract
	NodeMultiply
	NodeDivide
)

// NodeID indexes a Node inside its Tree.
type NodeID int32

// Node is one AST node. Literal uses Value; Negate uses Left; the binary
// operators use Left and Right.
type Node struct {
	Kind  NodeKind
	Value Rational
	Left  NodeID
	Right NodeID
}

// Tree is an arena holding every node of one parsed expression. Nodes are
// appended children-first, so every child index is below its parent's.
type Tree struct {
	nodes []Node
	root  NodeID
}

// Root returns the root node id.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) literal(v Rational) NodeID {
	return t.add(Node{Kind: NodeLiteral, Value: v})
}

func (t *Tree) negate(operand NodeID) NodeID {
	return t.add(Node{Kind: NodeNegate, Left: operand})
}

func (t *Tree) binary(kind NodeKind, left, right NodeID) NodeID {
	return t.add(Node{Kind: kind, Left: left, Right: right})
}

// String renders the tree fully parenthesized, e.g. "((2*3)+-(4))".
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return ""
	}
	var sb strings.Builder
	t.write(&sb, t.root)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, id NodeID) {
	n := t.nodes[id]
	switch n.Kind {
	case NodeLiteral:
		sb.WriteString(n.Value.String())
	case NodeNegate:
		sb.WriteString("-(")
		t.write(sb, n.Left)
		sb.WriteByte(')')
	default:
		sb.WriteByte('(')
		t.write(sb, n.Left)
		sb.WriteString(opSymbol[n.Kind])
		t.write(sb, n.Right)
		sb.WriteByte(')')
	}
}

var opSymbol = map[NodeKind]string{
	NodeAdd:      "+",
	NodeSubtract: "-",
	NodeMultiply: "*",
	NodeDivide:   "/",
}
