package trie

import "strings"

const (
	wildcardLabel   = "*"
	exceptionPrefix = "!"
)

// Trie stores public suffix rules and allows walking them label by label,
// starting with the top level label.
//
// Rules are inserted right to left: "*.kawasaki.jp" creates the path
// "jp" -> "kawasaki" and marks "kawasaki" as wildcard, "!city.kawasaki.jp"
// adds "city" to the exceptions of "kawasaki".
//
// A Trie is not safe for concurrent writes. Once built it is only read,
// so it can be shared freely between goroutines.
type Trie struct {
	root Children
}

func NewTrie() *Trie {
	return &Trie{}
}

func (t *Trie) IsEmpty() bool {
	return len(t.root) == 0
}

// Root returns the top level labels.
func (t *Trie) Root() Children {
	return t.root
}

// Insert adds a single rule.
//
// The last label always selects a top level entry. Every label left of it
// either marks the current node as wildcard ("*"), adds an exception to it
// ("!label") or descends into a child. Empty labels are skipped.
func (t *Trie) Insert(rule string) {
	labels := strings.Split(rule, ".")

	var n *Node

	for i := len(labels) - 1; i >= 0; i-- {
		label := labels[i]

		switch {
		case len(label) == 0:
			continue

		case n == nil:
			if t.root == nil {
				t.root = make(Children)
			}

			n = t.root.getOrCreate(label)

		case label == wildcardLabel:
			n.wildcard = true

		case strings.HasPrefix(label, exceptionPrefix):
			n.addException(strings.TrimPrefix(label, exceptionPrefix))

		default:
			if n.children == nil {
				n.children = make(Children, 1)
			}

			n = n.children.getOrCreate(label)
		}
	}
}

// Children maps a label to its node.
type Children map[string]*Node

// Get returns the node for `label` if there is one.
func (c Children) Get(label string) (*Node, bool) {
	n, ok := c[label]

	return n, ok
}

func (c Children) getOrCreate(label string) *Node {
	n, ok := c[label]
	if !ok {
		n = &Node{}
		c[label] = n
	}

	return n
}

// Node is a single label of one or more rules.
type Node struct {
	children   Children
	wildcard   bool
	exceptions map[string]struct{}
}

// Children returns the labels directly left of this one.
func (n *Node) Children() Children {
	return n.children
}

// IsWildcard reports if a "*.<node>" rule was declared.
func (n *Node) IsWildcard() bool {
	return n.wildcard
}

// IsException reports if a "!<label>.<node>" rule was declared.
func (n *Node) IsException(label string) bool {
	_, ok := n.exceptions[label]

	return ok
}

func (n *Node) addException(label string) {
	if n.exceptions == nil {
		n.exceptions = make(map[string]struct{}, 1)
	}

	n.exceptions[label] = struct{}{}
}
