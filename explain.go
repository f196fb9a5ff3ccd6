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

package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cybrota/arbor/trees"
	"github.com/patrickmn/go-cache"
)

var explainNotes = map[trees.Kind]string{
	trees.KindBST: `# Binary Search Tree

Every node keeps smaller values on its left and larger values on its right.
Nothing rebalances the tree, so inserting sorted input builds a linked list.

## Operations
* **insert** walks down and attaches a new leaf at the first empty slot. Duplicates are ignored.
* **delete** splices out a node with at most one child. A node with two children takes the
  value of its in-order successor, which is then removed from the right subtree.
* **rotate P C** lifts C above P. A left child gives a right rotation and a right child gives
  a left rotation. Anything else is ignored.
`,
	trees.KindAVL: `# AVL Tree

Each node stores the height of its subtree. After every insert and delete the heights of
all ancestors are recomputed and any node whose children differ by more than one in height
is rotated back into balance.

## Rebalancing cases
* **left-left** single right rotation
* **right-right** single left rotation
* **left-right** rotate the child left, then the node right
* **right-left** rotate the child right, then the node left

The height of an AVL tree with n nodes stays within about 1.44 log2(n).
`,
	trees.KindRBT: `# Red-Black Tree

Nodes are coloured red or black.

## Rules
* The root is black.
* A red node never has a red child.
* Every path from a node down to an empty slot crosses the same number of black nodes.

Inserts add a red leaf and repair double reds by recolouring or rotating. Deleting a
black node leaves a "double black" hole that is pushed up the tree until a red node
or the root absorbs it.

## Manual colour flips
**flip V** inverts a colour without any repair, so the rules above can be broken on purpose.
Run **check** afterwards to see which rule failed.
`,
}

// explainMarkdown returns the raw notes for kind
func explainMarkdown(kind trees.Kind) string {
	notes, ok := explainNotes[kind]
	if !ok {
		return "# " + kind.Title() + "\n\nNo notes available.\n"
	}
	return notes
}

// renderExplain renders the notes for kind with glamour, reusing cached pages
func renderExplain(c *cache.Cache, kind trees.Kind, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	if rendered := GetRendered(c, kind.String(), width); rendered != "" {
		return rendered, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	rendered, err := renderer.Render(explainMarkdown(kind))
	if err != nil {
		return "", err
	}
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	CacheRendered(c, kind.String(), width, rendered)
	return rendered, nil
}
