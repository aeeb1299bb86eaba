// Package tree defines the content-tree container for data extracted from a
// document: a generic key/value tree whose leaves carry page numbers. It is
// a plain data model with no behavior beyond construction and traversal.
package tree

// Origin identifies the source document of an extraction tree.
type Origin struct {
	Mimetype   string `json:"mimetype"`
	BinaryHash uint64 `json:"binary_hash"`
	Filename   string `json:"filename"`
	URI        string `json:"uri,omitempty"`
}

// Item is a tree element, either a Node or a Leaf.
type Item interface {
	ItemKey() string
}

// Node is an inner element grouping children under a key.
type Node struct {
	Key      string `json:"key"`
	Children []Item `json:"children"`
}

// Leaf holds one extracted value and the page it was found on.
type Leaf struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	PageNo int    `json:"page_no"`
}

// Tree is a full extraction result for one document.
type Tree struct {
	Origin  Origin `json:"origin"`
	Content []Item `json:"content"`
}

func (n *Node) ItemKey() string {
	return n.Key
}

func (l *Leaf) ItemKey() string {
	return l.Key
}

// NewNode creates an inner node.
func NewNode(key string, children ...Item) *Node {
	return &Node{Key: key, Children: children}
}

// NewLeaf creates a leaf value found on page pageNo.
func NewLeaf(key, value string, pageNo int) *Leaf {
	return &Leaf{Key: key, Value: value, PageNo: pageNo}
}

// AppendChild adds an item to the node and returns the node.
func (n *Node) AppendChild(item Item) *Node {
	n.Children = append(n.Children, item)
	return n
}

// Leaves returns every leaf of the tree in depth-first order.
func (t *Tree) Leaves() []*Leaf {
	var res []*Leaf
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, item := range items {
			switch it := item.(type) {
			case *Leaf:
				res = append(res, it)
			case *Node:
				walk(it.Children)
			}
		}
	}
	walk(t.Content)
	return res
}
