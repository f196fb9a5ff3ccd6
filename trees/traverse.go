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

import (
	"strings"

	"github.com/ansel1/merry"
)

// Order selects a traversal
type Order string

const (
	Preorder   Order = "preorder"
	Inorder    Order = "inorder"
	Postorder  Order = "postorder"
	LevelOrder Order = "levelorder"
)

// Orders lists every traversal in display order
var Orders = []Order{Preorder, Inorder, Postorder, LevelOrder}

var ErrUnknownOrder = merry.New("unknown traversal order")

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preorder":
		return Preorder, nil
	case "in", "inorder", "sorted":
		return Inorder, nil
	case "post", "postorder":
		return Postorder, nil
	case "level", "levelorder", "level-order", "bfs":
		return LevelOrder, nil
	}
	return "", ErrUnknownOrder.Here().WithValue("order", s)
}

// Traverse dispatches to the traversal named by order.
// An unknown order yields nil.
func Traverse(t Tree, order Order) []int {
	switch order {
	case Preorder:
		return t.Preorder()
	case Inorder:
		return t.Inorder()
	case Postorder:
		return t.Postorder()
	case LevelOrder:
		return t.LevelOrder()
	}
	return nil
}

// walker knows how to read a node type N. The engines keep their own node
// structs; walker is what lets them share the visiting code.
type walker[N comparable] struct {
	value func(N) int
	left  func(N) N
	right func(N) N
}

func (w walker[N]) preorder(root N) []int {
	var nilNode N
	result := []int{}
	var visit func(N)
	visit = func(node N) {
		if node == nilNode {
			return
		}
		result = append(result, w.value(node))
		visit(w.left(node))
		visit(w.right(node))
	}
	visit(root)
	return result
}

func (w walker[N]) inorder(root N) []int {
	var nilNode N
	result := []int{}
	var visit func(N)
	visit = func(node N) {
		if node == nilNode {
			return
		}
		visit(w.left(node))
		result = append(result, w.value(node))
		visit(w.right(node))
	}
	visit(root)
	return result
}

func (w walker[N]) postorder(root N) []int {
	var nilNode N
	result := []int{}
	var visit func(N)
	visit = func(node N) {
		if node == nilNode {
			return
		}
		visit(w.left(node))
		visit(w.right(node))
		result = append(result, w.value(node))
	}
	visit(root)
	return result
}

func (w walker[N]) levelOrder(root N) []int {
	var nilNode N
	result := []int{}
	if root == nilNode {
		return result
	}
	queue := []N{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, w.value(node))
		if l := w.left(node); l != nilNode {
			queue = append(queue, l)
		}
		if r := w.right(node); r != nilNode {
			queue = append(queue, r)
		}
	}
	return result
}

func (w walker[N]) count(node N) int {
	var nilNode N
	if node == nilNode {
		return 0
	}
	return 1 + w.count(w.left(node)) + w.count(w.right(node))
}

func (w walker[N]) height(node N) int {
	var nilNode N
	if node == nilNode {
		return 0
	}
	return 1 + max(w.height(w.left(node)), w.height(w.right(node)))
}

// path records every value compared on the way down to value, including
// the match itself when present.
func (w walker[N]) path(root N, value int) []int {
	var nilNode N
	result := []int{}
	for node := root; node != nilNode; {
		v := w.value(node)
		result = append(result, v)
		switch {
		case value < v:
			node = w.left(node)
		case value > v:
			node = w.right(node)
		default:
			return result
		}
	}
	return result
}

func (w walker[N]) find(root N, value int) N {
	var nilNode N
	node := root
	for node != nilNode {
		v := w.value(node)
		switch {
		case value < v:
			node = w.left(node)
		case value > v:
			node = w.right(node)
		default:
			return node
		}
	}
	return nilNode
}

// checkOrder verifies the strict BST ordering below node, with every value
// bounded by the open interval (lo, hi). nil bounds are unbounded.
func (w walker[N]) checkOrder(node N, lo, hi *int) error {
	var nilNode N
	if node == nilNode {
		return nil
	}
	v := w.value(node)
	if (lo != nil && v <= *lo) || (hi != nil && v >= *hi) {
		return ErrOrder.Here().WithValue("value", v)
	}
	if err := w.checkOrder(w.left(node), lo, &v); err != nil {
		return err
	}
	return w.checkOrder(w.right(node), &v, hi)
}
