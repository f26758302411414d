package ui

import "fmt"

// Node addresses a widget inside a Tree.
type Node int32

// Param is either a Prop or a child Node; widget constructors accept both
// so a tree reads as one nested expression.
type Param interface{ param() }

func (Prop) param() {}
func (Node) param() {}

type node struct {
	kind     Kind
	props    []Prop
	children []Node
}

// Tree is an arena of widget nodes built fresh from the user state every pass.
type Tree struct {
	nodes []node
}

func NewTree() *Tree { return &Tree{nodes: make([]node, 0, 32)} }

func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) add(k Kind, params []Param) Node {
	var n node
	n.kind = k
	for _, p := range params {
		switch v := p.(type) {
		case Prop:
			n.props = append(n.props, v)
		case Node:
			if int(v) < 0 || int(v) >= len(t.nodes) {
				panic(fmt.Sprintf("ui: child node %d does not belong to this tree", v))
			}
			n.children = append(n.children, v)
		}
	}
	t.nodes = append(t.nodes, n)
	return Node(len(t.nodes) - 1)
}

func (t *Tree) Container(params ...Param) Node { return t.add(KindContainer, params) }
func (t *Tree) Rectangle(params ...Param) Node { return t.add(KindRectangle, params) }
func (t *Tree) Text(params ...Param) Node      { return t.add(KindText, params) }
func (t *Tree) TextBox(params ...Param) Node   { return t.add(KindTextBox, params) }
func (t *Tree) Button(params ...Param) Node    { return t.add(KindButton, params) }
func (t *Tree) MouseArea(params ...Param) Node { return t.add(KindMouseArea, params) }

// handler is the per-kind phase protocol.
type handler[S any] interface {
	initialize(c Context[S]) Context[S]
	update(c Context[S], props []Prop) Context[S]
	draw(c Context[S], props []Prop) Context[S]
	noop(c Context[S], props []Prop) Context[S]
}

func handlerFor[S any](k Kind) handler[S] {
	switch k {
	case KindContainer:
		return containerHandler[S]{}
	case KindRectangle:
		return rectangleHandler[S]{}
	case KindText:
		return textHandler[S]{}
	case KindTextBox:
		return textBoxHandler[S]{}
	case KindButton:
		return buttonHandler[S]{}
	case KindMouseArea:
		return mouseAreaHandler[S]{}
	}
	panic(fmt.Sprintf("ui: no handler for %v", k))
}

func invoke[S any](h handler[S], c Context[S], props []Prop) Context[S] {
	switch c.Phase() {
	case PhaseInitialize:
		return h.initialize(c)
	case PhaseUpdate:
		return h.update(c, props)
	case PhaseDraw:
		return h.draw(c, props)
	default:
		return h.noop(c, props)
	}
}

// Build walks the subtree at n: the node's handler runs at the next level,
// then its children are built in order against the resulting context.
func Build[S any](t *Tree, c Context[S], n Node) Context[S] {
	if int(n) < 0 || int(n) >= len(t.nodes) {
		panic(&StructuralError{Op: "build", Tag: Tag{Level: c.level + 1}, Detail: fmt.Sprintf("node %d out of range", n)})
	}
	nd := &t.nodes[n]
	c = invoke(handlerFor[S](nd.kind), c.levelUp(), nd.props)
	for _, child := range nd.children {
		c = Build(t, c, child)
	}
	return c
}

// Layout produces the widget tree for a user state.
type Layout[S any] func(t *Tree, state S) Node

// Evaluate runs one pass of phase over the tree layout builds from the
// stack's user state and returns the resulting stack.
func Evaluate[S any](phase Phase, style *Style, stack Stack[S], layout Layout[S]) Stack[S] {
	t := NewTree()
	root := layout(t, stack.User())
	return Build(t, NewContext(phase, style, stack), root).Stack()
}
