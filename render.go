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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/arbor/trees"
)

// displayNode is an engine independent view of a node used for printing
type displayNode struct {
	label       string
	left, right *displayNode
}

type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// treeRenderer prints trees sideways, root on the left and larger values on top
type treeRenderer struct {
	colors bool
	red    lipgloss.Style
	black  lipgloss.Style
	plain  lipgloss.Style
	edge   lipgloss.Style
}

func newTreeRenderer(colors bool) *treeRenderer {
	scheme := GetColorScheme()
	return &treeRenderer{
		colors: colors,
		red:    lipgloss.NewStyle().Foreground(scheme.RedNode).Bold(true),
		black:  lipgloss.NewStyle().Foreground(scheme.BlackNode).Bold(true),
		plain:  lipgloss.NewStyle().Foreground(scheme.PlainNode),
		edge:   lipgloss.NewStyle().Foreground(scheme.Branch),
	}
}

// Render returns the printed tree, or a placeholder for an empty tree
func (r *treeRenderer) Render(t trees.Tree) string {
	root := r.view(t)
	if root == nil {
		return "(empty " + t.Kind().Title() + ")\n"
	}
	var sb strings.Builder
	r.print(&sb, root, "", branchRoot)
	return sb.String()
}

func (r *treeRenderer) view(t trees.Tree) *displayNode {
	switch t.Kind() {
	case trees.KindBST:
		return r.viewBST(t.(*trees.BST).Root)
	case trees.KindAVL:
		return r.viewAVL(t.(*trees.AVLTree).Root)
	case trees.KindRBT:
		return r.viewRBT(t.(*trees.RBT).Root)
	}
	return nil
}

func (r *treeRenderer) viewBST(node *trees.BSTNode) *displayNode {
	if node == nil {
		return nil
	}
	return &displayNode{
		label: r.style(r.plain, fmt.Sprint(node.Value)),
		left:  r.viewBST(node.Left),
		right: r.viewBST(node.Right),
	}
}

func (r *treeRenderer) viewAVL(node *trees.AVLNode) *displayNode {
	if node == nil {
		return nil
	}
	lh, rh := 0, 0
	if node.Left != nil {
		lh = node.Left.Height
	}
	if node.Right != nil {
		rh = node.Right.Height
	}
	label := r.style(r.plain, fmt.Sprint(node.Value)) + fmt.Sprintf(" h%d %+d", node.Height, lh-rh)
	return &displayNode{
		label: label,
		left:  r.viewAVL(node.Left),
		right: r.viewAVL(node.Right),
	}
}

func (r *treeRenderer) viewRBT(node *trees.RBNode) *displayNode {
	if node == nil {
		return nil
	}
	var label string
	switch {
	case !r.colors && node.Color == trees.Red:
		label = fmt.Sprintf("%d(R)", node.Value)
	case !r.colors:
		label = fmt.Sprintf("%d(B)", node.Value)
	case node.Color == trees.Red:
		label = r.red.Render(fmt.Sprint(node.Value))
	default:
		label = r.black.Render(fmt.Sprint(node.Value))
	}
	return &displayNode{
		label: label,
		left:  r.viewRBT(node.Left),
		right: r.viewRBT(node.Right),
	}
}

func (r *treeRenderer) style(s lipgloss.Style, text string) string {
	if !r.colors {
		return text
	}
	return s.Render(text)
}

func (r *treeRenderer) print(sb *strings.Builder, node *displayNode, prefix string, br branch) {
	if node.right != nil {
		t := "      "
		if br == branchLeft {
			t = "|     "
		}
		r.print(sb, node.right, prefix+t, branchRight)
	}

	var connector string
	switch br {
	case branchRoot:
		connector = "-----"
	case branchLeft:
		connector = "\\----"
	case branchRight:
		connector = "/----"
	}
	sb.WriteString(prefix)
	sb.WriteString(r.style(r.edge, connector))
	sb.WriteString(" ")
	sb.WriteString(node.label)
	sb.WriteString("\n")

	if node.left != nil {
		t := "      "
		if br == branchRight {
			t = "|     "
		}
		r.print(sb, node.left, prefix+t, branchLeft)
	}
}

// renderTraversals formats every traversal order of t, one per line
func renderTraversals(t trees.Tree) string {
	var sb strings.Builder
	for _, order := range trees.Orders {
		fmt.Fprintf(&sb, "%-11s %s\n", order, joinInts(trees.Traverse(t, order), " "))
	}
	return sb.String()
}
