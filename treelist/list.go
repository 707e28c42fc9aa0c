package treelist

import (
	"errors"
	"iter"
	"strings"

	"github.com/katalvlaran/mstree/core"
)

// ErrEmptyList is returned by RemoveFront on an empty list.
var ErrEmptyList = errors.New("treelist: list is empty")

type node struct {
	tree *core.PartialTree
	next *node
}

// List is a circular list of partial trees. The zero value is an empty list.
type List struct {
	rear *node
	size int
}

// New returns an empty list.
func New() *List { return &List{} }

// Size returns the number of trees in the list.
func (l *List) Size() int { return l.size }

// Append adds tree at the end of the list.
// Complexity: O(1).
func (l *List) Append(tree *core.PartialTree) {
	n := &node{tree: tree}
	if l.rear == nil {
		n.next = n
	} else {
		n.next = l.rear.next
		l.rear.next = n
	}
	l.rear = n
	l.size++
}

// RemoveFront removes and returns the tree at the front of the list.
// Returns ErrEmptyList if the list is empty.
// Complexity: O(1).
func (l *List) RemoveFront() (*core.PartialTree, error) {
	if l.rear == nil {
		return nil, ErrEmptyList
	}
	front := l.rear.next
	if front == l.rear {
		l.rear = nil
	} else {
		l.rear.next = front.next
	}
	l.size--

	return front.tree, nil
}

// RemoveContaining removes and returns the first tree, scanning from the
// front, whose root is v. ok is false when no tree has root v.
// Complexity: O(n).
func (l *List) RemoveContaining(v *core.Vertex) (tree *core.PartialTree, ok bool) {
	if l.rear == nil || v == nil {
		return nil, false
	}

	prev := l.rear
	for i := 0; i < l.size; i++ {
		cur := prev.next
		if cur.tree.Root() == v {
			if cur == prev {
				// Sole node.
				l.rear = nil
			} else {
				prev.next = cur.next
				if cur == l.rear {
					l.rear = prev
				}
			}
			l.size--

			return cur.tree, true
		}
		prev = cur
	}

	return nil, false
}

// All yields the trees from front to rear without modifying the list.
// The list must not be modified while iterating.
func (l *List) All() iter.Seq[*core.PartialTree] {
	return func(yield func(*core.PartialTree) bool) {
		if l.rear == nil {
			return
		}
		n := l.rear.next
		for rest := l.size; rest > 0; rest-- {
			if !yield(n.tree) {
				return
			}
			n = n.next
		}
	}
}

// String renders the trees front to rear, separated by spaces.
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for t := range l.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
