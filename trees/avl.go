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

// AVLNode is a node of the height-balanced tree. Height counts nodes on the
// longest downward path, so a leaf has height 1.
type AVLNode struct {
	Value  int
	Height int
	Left   *AVLNode
	Right  *AVLNode
}

// AVLTree keeps |height(left) - height(right)| <= 1 at every node
type AVLTree struct {
	Root *AVLNode
}

var avlWalker = walker[*AVLNode]{
	value: func(n *AVLNode) int { return n.Value },
	left:  func(n *AVLNode) *AVLNode { return n.Left },
	right: func(n *AVLNode) *AVLNode { return n.Right },
}

func NewAVLTree(values ...int) *AVLTree {
	tree := &AVLTree{Root: nil}
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// NewAVLTreeFromRoot deep copies root. Heights are recomputed rather than
// trusted from the source nodes.
func NewAVLTreeFromRoot(root *AVLNode) *AVLTree {
	tree := &AVLTree{}
	tree.Root = tree.cloneNode(root)
	return tree
}

func (tree *AVLTree) cloneNode(node *AVLNode) *AVLNode {
	if node == nil {
		return nil
	}
	copied := &AVLNode{
		Value: node.Value,
		Left:  tree.cloneNode(node.Left),
		Right: tree.cloneNode(node.Right),
	}
	tree.updateHeight(copied)
	return copied
}

func (tree *AVLTree) Kind() Kind { return KindAVL }

func (tree *AVLTree) Clone() *AVLTree { return NewAVLTreeFromRoot(tree.Root) }

func (tree *AVLTree) CloneTree() Tree { return tree.Clone() }

func (tree *AVLTree) Clear() { tree.Root = nil }

func (tree *AVLTree) getHeight(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (tree *AVLTree) updateHeight(node *AVLNode) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *AVLTree) getBalanceFactor(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}

func (tree *AVLTree) rotateLeft(node *AVLNode) *AVLNode {
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node

	// node is now below pivot, so its height must be settled first
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *AVLTree) rotateRight(node *AVLNode) *AVLNode {
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// Insert adds value and rebalances on the way back up. Duplicates are
// ignored.
func (tree *AVLTree) Insert(value int) bool {
	inserted := false
	tree.Root = tree.insertRecursive(tree.Root, value, &inserted)
	return inserted
}

func (tree *AVLTree) insertRecursive(node *AVLNode, value int, inserted *bool) *AVLNode {
	if node == nil {
		*inserted = true
		return &AVLNode{Value: value, Height: 1}
	}

	if value < node.Value {
		node.Left = tree.insertRecursive(node.Left, value, inserted)
	} else if value > node.Value {
		node.Right = tree.insertRecursive(node.Right, value, inserted)
	} else {
		return node
	}

	tree.updateHeight(node)

	balanceFactor := tree.getBalanceFactor(node)

	// Left-Left
	if balanceFactor > 1 && value < node.Left.Value {
		return tree.rotateRight(node)
	}
	// Right-Right
	if balanceFactor < -1 && value > node.Right.Value {
		return tree.rotateLeft(node)
	}
	// Left-Right
	if balanceFactor > 1 && value > node.Left.Value {
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	}
	// Right-Left
	if balanceFactor < -1 && value < node.Right.Value {
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// Delete removes value, rebalancing every ancestor on the unwind path
func (tree *AVLTree) Delete(value int) bool {
	deleted := false
	tree.Root = tree.deleteRecursive(tree.Root, value, &deleted)
	return deleted
}

func (tree *AVLTree) deleteRecursive(node *AVLNode, value int, deleted *bool) *AVLNode {
	if node == nil {
		return nil
	}

	if value < node.Value {
		node.Left = tree.deleteRecursive(node.Left, value, deleted)
	} else if value > node.Value {
		node.Right = tree.deleteRecursive(node.Right, value, deleted)
	} else {
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
	}

	tree.updateHeight(node)
	return tree.rebalance(node)
}

func (tree *AVLTree) findMin(node *AVLNode) *AVLNode {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// rebalance picks the rotation case from the child's own balance factor,
// which is what deletion needs since there is no inserted value to compare.
func (tree *AVLTree) rebalance(node *AVLNode) *AVLNode {
	balanceFactor := tree.getBalanceFactor(node)

	if balanceFactor > 1 {
		if tree.getBalanceFactor(node.Left) >= 0 {
			return tree.rotateRight(node)
		}
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	}

	if balanceFactor < -1 {
		if tree.getBalanceFactor(node.Right) <= 0 {
			return tree.rotateLeft(node)
		}
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// BalanceFactor reports height(left) - height(right) for the node holding
// value.
func (tree *AVLTree) BalanceFactor(value int) (int, bool) {
	node := avlWalker.find(tree.Root, value)
	if node == nil {
		return 0, false
	}
	return tree.getBalanceFactor(node), true
}

func (tree *AVLTree) Contains(value int) bool {
	return avlWalker.find(tree.Root, value) != nil
}

func (tree *AVLTree) Path(value int) []int { return avlWalker.path(tree.Root, value) }

func (tree *AVLTree) Len() int { return avlWalker.count(tree.Root) }

func (tree *AVLTree) Height() int { return tree.getHeight(tree.Root) }

func (tree *AVLTree) Preorder() []int   { return avlWalker.preorder(tree.Root) }
func (tree *AVLTree) Inorder() []int    { return avlWalker.inorder(tree.Root) }
func (tree *AVLTree) Postorder() []int  { return avlWalker.postorder(tree.Root) }
func (tree *AVLTree) LevelOrder() []int { return avlWalker.levelOrder(tree.Root) }

// Check verifies ordering, stored heights and balance factors
func (tree *AVLTree) Check() error {
	if err := avlWalker.checkOrder(tree.Root, nil, nil); err != nil {
		return err
	}
	_, err := tree.checkNode(tree.Root)
	return err
}

// checkNode returns the real height of node's subtree
func (tree *AVLTree) checkNode(node *AVLNode) (int, error) {
	if node == nil {
		return 0, nil
	}
	lh, err := tree.checkNode(node.Left)
	if err != nil {
		return 0, err
	}
	rh, err := tree.checkNode(node.Right)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if node.Height != h {
		return 0, ErrHeight.Here().WithValue("value", node.Value).WithValue("stored", node.Height).WithValue("actual", h)
	}
	if diff := lh - rh; diff > 1 || diff < -1 {
		return 0, ErrBalance.Here().WithValue("value", node.Value).WithValue("balance", diff)
	}
	return h, nil
}
