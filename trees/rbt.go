// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trees

// Color of a red-black node. The numeric values match the 0/1 encoding
// accepted in snapshots.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "RED"
	}
	return "BLACK"
}

// RBNode is a red-black node. parent is a back-reference only: ownership
// runs strictly through Left and Right.
type RBNode struct {
	Value  int
	Color  Color
	Left   *RBNode
	Right  *RBNode
	parent *RBNode
}

// Parent returns the node's structural parent, nil for the root
func (n *RBNode) Parent() *RBNode { return n.parent }

func isRed(n *RBNode) bool { return n != nil && n.Color == Red }

// RBT is a red-black tree of distinct ints
type RBT struct {
	Root *RBNode
}

var rbWalker = walker[*RBNode]{
	value: func(n *RBNode) int { return n.Value },
	left:  func(n *RBNode) *RBNode { return n.Left },
	right: func(n *RBNode) *RBNode { return n.Right },
}

func NewRBT(values ...int) *RBT {
	tree := &RBT{}
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// NewRBTFromRoot deep copies root, deriving parent links from the copy
func NewRBTFromRoot(root *RBNode) *RBT {
	return &RBT{Root: cloneRBNode(root, nil)}
}

func cloneRBNode(node, parent *RBNode) *RBNode {
	if node == nil {
		return nil
	}
	copied := &RBNode{Value: node.Value, Color: node.Color, parent: parent}
	copied.Left = cloneRBNode(node.Left, copied)
	copied.Right = cloneRBNode(node.Right, copied)
	return copied
}

func (tree *RBT) Kind() Kind { return KindRBT }

func (tree *RBT) Clone() *RBT { return NewRBTFromRoot(tree.Root) }

func (tree *RBT) CloneTree() Tree { return tree.Clone() }

func (tree *RBT) Clear() { tree.Root = nil }

// replaceChild points whatever held old at repl instead. It does not touch
// repl's parent link.
func (tree *RBT) replaceChild(parent, old, repl *RBNode) {
	switch {
	case parent == nil:
		tree.Root = repl
	case parent.Left == old:
		parent.Left = repl
	default:
		parent.Right = repl
	}
}

func (tree *RBT) rotateLeft(node *RBNode) {
	pivot := node.Right
	if pivot == nil {
		return
	}
	node.Right = pivot.Left
	if pivot.Left != nil {
		pivot.Left.parent = node
	}
	pivot.parent = node.parent
	tree.replaceChild(node.parent, node, pivot)
	pivot.Left = node
	node.parent = pivot
}

func (tree *RBT) rotateRight(node *RBNode) {
	pivot := node.Left
	if pivot == nil {
		return
	}
	node.Left = pivot.Right
	if pivot.Right != nil {
		pivot.Right.parent = node
	}
	pivot.parent = node.parent
	tree.replaceChild(node.parent, node, pivot)
	pivot.Right = node
	node.parent = pivot
}

// transplant hangs v where u was
func (tree *RBT) transplant(u, v *RBNode) {
	tree.replaceChild(u.parent, u, v)
	if v != nil {
		v.parent = u.parent
	}
}

// Insert adds value as a red leaf and repairs any red-red violation
func (tree *RBT) Insert(value int) bool {
	var parent *RBNode
	for node := tree.Root; node != nil; {
		parent = node
		switch {
		case value < node.Value:
			node = node.Left
		case value > node.Value:
			node = node.Right
		default:
			return false
		}
	}

	node := &RBNode{Value: value, Color: Red, parent: parent}
	switch {
	case parent == nil:
		tree.Root = node
	case value < parent.Value:
		parent.Left = node
	default:
		parent.Right = node
	}
	tree.insertFixup(node)
	return true
}

func (tree *RBT) insertFixup(node *RBNode) {
	for isRed(node.parent) {
		parent := node.parent
		grand := parent.parent
		if grand == nil {
			// red root, only reachable after a manual colour flip
			break
		}

		if parent == grand.Left {
			uncle := grand.Right
			if isRed(uncle) {
				parent.Color = Black
				uncle.Color = Black
				grand.Color = Red
				node = grand
				continue
			}
			if node == parent.Right {
				node = parent
				tree.rotateLeft(node)
				parent = node.parent
			}
			parent.Color = Black
			grand.Color = Red
			tree.rotateRight(grand)
		} else {
			uncle := grand.Left
			if isRed(uncle) {
				parent.Color = Black
				uncle.Color = Black
				grand.Color = Red
				node = grand
				continue
			}
			if node == parent.Left {
				node = parent
				tree.rotateRight(node)
				parent = node.parent
			}
			parent.Color = Black
			grand.Color = Red
			tree.rotateLeft(grand)
		}
	}
	tree.Root.Color = Black
}

// Delete removes value. When the node has two children its in-order
// successor takes its place and colour; the successor's old slot is what
// actually leaves the tree.
func (tree *RBT) Delete(value int) bool {
	target := rbWalker.find(tree.Root, value)
	if target == nil {
		return false
	}

	removedColor := target.Color
	var child, childParent *RBNode

	switch {
	case target.Left == nil:
		child, childParent = target.Right, target.parent
		tree.transplant(target, target.Right)
	case target.Right == nil:
		child, childParent = target.Left, target.parent
		tree.transplant(target, target.Left)
	default:
		successor := target.Right
		for successor.Left != nil {
			successor = successor.Left
		}
		removedColor = successor.Color
		child = successor.Right

		if successor.parent == target {
			childParent = successor
		} else {
			childParent = successor.parent
			tree.transplant(successor, successor.Right)
			successor.Right = target.Right
			successor.Right.parent = successor
		}

		tree.transplant(target, successor)
		successor.Left = target.Left
		successor.Left.parent = successor
		successor.Color = target.Color
	}

	target.Left, target.Right, target.parent = nil, nil, nil

	if removedColor == Black {
		tree.deleteFixup(child, childParent)
	}
	return true
}

// deleteFixup pushes the missing black unit up from node until a red node
// or a rotation absorbs it. node may be nil, so its parent travels with it.
func (tree *RBT) deleteFixup(node, parent *RBNode) {
	for node != tree.Root && !isRed(node) && parent != nil {
		if node == parent.Left {
			sibling := parent.Right
			if isRed(sibling) {
				sibling.Color = Black
				parent.Color = Red
				tree.rotateLeft(parent)
				sibling = parent.Right
			}
			if sibling == nil {
				node, parent = parent, parent.parent
				continue
			}
			if !isRed(sibling.Left) && !isRed(sibling.Right) {
				sibling.Color = Red
				node, parent = parent, parent.parent
				continue
			}
			if !isRed(sibling.Right) {
				sibling.Left.Color = Black
				sibling.Color = Red
				tree.rotateRight(sibling)
				sibling = parent.Right
			}
			sibling.Color = parent.Color
			parent.Color = Black
			if sibling.Right != nil {
				sibling.Right.Color = Black
			}
			tree.rotateLeft(parent)
			node, parent = tree.Root, nil
		} else {
			sibling := parent.Left
			if isRed(sibling) {
				sibling.Color = Black
				parent.Color = Red
				tree.rotateRight(parent)
				sibling = parent.Left
			}
			if sibling == nil {
				node, parent = parent, parent.parent
				continue
			}
			if !isRed(sibling.Left) && !isRed(sibling.Right) {
				sibling.Color = Red
				node, parent = parent, parent.parent
				continue
			}
			if !isRed(sibling.Left) {
				sibling.Right.Color = Black
				sibling.Color = Red
				tree.rotateLeft(sibling)
				sibling = parent.Left
			}
			sibling.Color = parent.Color
			parent.Color = Black
			if sibling.Left != nil {
				sibling.Left.Color = Black
			}
			tree.rotateRight(parent)
			node, parent = tree.Root, nil
		}
	}
	if node != nil {
		node.Color = Black
	}
}

// FlipNodeColor inverts the colour of the node holding value without any
// rebalancing. It exists for manual exploration and can break the
// red-black invariants on purpose.
func (tree *RBT) FlipNodeColor(value int) bool {
	node := rbWalker.find(tree.Root, value)
	if node == nil {
		return false
	}
	if node.Color == Red {
		node.Color = Black
	} else {
		node.Color = Red
	}
	return true
}

// ColorOf reports the colour of the node holding value
func (tree *RBT) ColorOf(value int) (Color, bool) {
	node := rbWalker.find(tree.Root, value)
	if node == nil {
		return Black, false
	}
	return node.Color, true
}

// BlackHeight counts black nodes from the root down its leftmost path
func (tree *RBT) BlackHeight() int {
	height := 0
	for node := tree.Root; node != nil; node = node.Left {
		if node.Color == Black {
			height++
		}
	}
	return height
}

func (tree *RBT) Contains(value int) bool {
	return rbWalker.find(tree.Root, value) != nil
}

func (tree *RBT) Path(value int) []int { return rbWalker.path(tree.Root, value) }

func (tree *RBT) Len() int { return rbWalker.count(tree.Root) }

func (tree *RBT) Height() int { return rbWalker.height(tree.Root) }

func (tree *RBT) Preorder() []int   { return rbWalker.preorder(tree.Root) }
func (tree *RBT) Inorder() []int    { return rbWalker.inorder(tree.Root) }
func (tree *RBT) Postorder() []int  { return rbWalker.postorder(tree.Root) }
func (tree *RBT) LevelOrder() []int { return rbWalker.levelOrder(tree.Root) }

// Check verifies ordering, the colour rules and every parent link
func (tree *RBT) Check() error {
	if err := rbWalker.checkOrder(tree.Root, nil, nil); err != nil {
		return err
	}
	if tree.Root == nil {
		return nil
	}
	if tree.Root.Color == Red {
		return ErrRedRoot.Here().WithValue("value", tree.Root.Value)
	}
	_, err := tree.checkNode(tree.Root, nil)
	return err
}

// checkNode returns the black height below node, nil leaves counting zero
func (tree *RBT) checkNode(node, parent *RBNode) (int, error) {
	if node == nil {
		return 0, nil
	}
	if node.parent != parent {
		return 0, ErrParentLink.Here().WithValue("value", node.Value)
	}
	if node.Color == Red && (isRed(node.Left) || isRed(node.Right)) {
		return 0, ErrRedRed.Here().WithValue("value", node.Value)
	}
	lh, err := tree.checkNode(node.Left, node)
	if err != nil {
		return 0, err
	}
	rh, err := tree.checkNode(node.Right, node)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, ErrBlackHeight.Here().WithValue("value", node.Value).WithValue("left", lh).WithValue("right", rh)
	}
	if node.Color == Black {
		lh++
	}
	return lh, nil
}
