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

// BSTNode is a node of the unbalanced tree. Children are owned by the node
// holding them.
type BSTNode struct {
	Value int
	Left  *BSTNode
	Right *BSTNode
}

// BST is an unbalanced binary search tree of distinct ints
type BST struct {
	Root *BSTNode
}

var bstWalker = walker[*BSTNode]{
	value: func(n *BSTNode) int { return n.Value },
	left:  func(n *BSTNode) *BSTNode { return n.Left },
	right: func(n *BSTNode) *BSTNode { return n.Right },
}

func NewBST(values ...int) *BST {
	tree := &BST{}
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// NewBSTFromRoot builds a tree holding a deep copy of root
func NewBSTFromRoot(root *BSTNode) *BST {
	return &BST{Root: cloneBSTNode(root)}
}

func cloneBSTNode(node *BSTNode) *BSTNode {
	if node == nil {
		return nil
	}
	return &BSTNode{
		Value: node.Value,
		Left:  cloneBSTNode(node.Left),
		Right: cloneBSTNode(node.Right),
	}
}

func (tree *BST) Kind() Kind { return KindBST }

// Clone returns a structural deep copy sharing no nodes with tree
func (tree *BST) Clone() *BST { return NewBSTFromRoot(tree.Root) }

func (tree *BST) CloneTree() Tree { return tree.Clone() }

func (tree *BST) Clear() { tree.Root = nil }

// Insert attaches value as a new leaf. Duplicates are ignored.
func (tree *BST) Insert(value int) bool {
	if tree.Root == nil {
		tree.Root = &BSTNode{Value: value}
		return true
	}
	node := tree.Root
	for {
		switch {
		case value < node.Value:
			if node.Left == nil {
				node.Left = &BSTNode{Value: value}
				return true
			}
			node = node.Left
		case value > node.Value:
			if node.Right == nil {
				node.Right = &BSTNode{Value: value}
				return true
			}
			node = node.Right
		default:
			return false
		}
	}
}

// Delete removes value. A node with two children takes its in-order
// successor's value and the successor is removed from the right subtree.
func (tree *BST) Delete(value int) bool {
	deleted := false
	tree.Root = tree.deleteRecursive(tree.Root, value, &deleted)
	return deleted
}

func (tree *BST) deleteRecursive(node *BSTNode, value int, deleted *bool) *BSTNode {
	if node == nil {
		return nil
	}

	if value < node.Value {
		node.Left = tree.deleteRecursive(node.Left, value, deleted)
		return node
	}
	if value > node.Value {
		node.Right = tree.deleteRecursive(node.Right, value, deleted)
		return node
	}

	*deleted = true
	if node.Left == nil {
		return node.Right
	}
	if node.Right == nil {
		return node.Left
	}
	successor := tree.findMin(node.Right)
	node.Value = successor.Value
	node.Right = tree.deleteRecursive(node.Right, successor.Value, deleted)
	return node
}

func (tree *BST) findMin(node *BSTNode) *BSTNode {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// findWithParent returns the node holding value and the node above it.
// parent is nil when the match is the root.
func (tree *BST) findWithParent(value int) (node, parent *BSTNode) {
	node = tree.Root
	for node != nil && node.Value != value {
		parent = node
		if value < node.Value {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node, parent
}

// Rotate turns the parent/child pair around so child becomes the ancestor.
// A left child causes a right rotation and a right child a left rotation.
// Anything other than a direct parent/child pair is ignored.
func (tree *BST) Rotate(parentValue, childValue int) bool {
	node, above := tree.findWithParent(parentValue)
	if node == nil {
		return false
	}

	var pivot *BSTNode
	switch {
	case node.Left != nil && node.Left.Value == childValue:
		pivot = tree.rotateRight(node)
	case node.Right != nil && node.Right.Value == childValue:
		pivot = tree.rotateLeft(node)
	default:
		return false
	}

	switch {
	case above == nil:
		tree.Root = pivot
	case above.Left == node:
		above.Left = pivot
	default:
		above.Right = pivot
	}
	return true
}

func (tree *BST) rotateLeft(node *BSTNode) *BSTNode {
	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node
	return pivot
}

func (tree *BST) rotateRight(node *BSTNode) *BSTNode {
	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node
	return pivot
}

func (tree *BST) Contains(value int) bool {
	return bstWalker.find(tree.Root, value) != nil
}

func (tree *BST) Path(value int) []int { return bstWalker.path(tree.Root, value) }

func (tree *BST) Len() int { return bstWalker.count(tree.Root) }

func (tree *BST) Height() int { return bstWalker.height(tree.Root) }

func (tree *BST) Preorder() []int   { return bstWalker.preorder(tree.Root) }
func (tree *BST) Inorder() []int    { return bstWalker.inorder(tree.Root) }
func (tree *BST) Postorder() []int  { return bstWalker.postorder(tree.Root) }
func (tree *BST) LevelOrder() []int { return bstWalker.levelOrder(tree.Root) }

// Check verifies the strict ordering invariant, which also rules out
// duplicate values.
func (tree *BST) Check() error {
	return bstWalker.checkOrder(tree.Root, nil, nil)
}
