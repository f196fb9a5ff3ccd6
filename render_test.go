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
	"testing"

	"github.com/cybrota/arbor/trees"
	"github.com/stretchr/testify/assert"
)

func TestRenderBST(t *testing.T) {
	r := newTreeRenderer(false)
	got := r.Render(trees.NewBST(5, 3, 8, 1, 4))

	want := strings.Join([]string{
		"      /---- 8",
		"----- 5",
		"      |     /---- 4",
		"      \\---- 3",
		"            \\---- 1",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestRenderAVLShowsHeightAndBalance(t *testing.T) {
	r := newTreeRenderer(false)
	got := r.Render(trees.NewAVLTree(1, 2, 3, 4, 5))

	assert.Contains(t, got, "----- 2 h3 -1")
	assert.Contains(t, got, "1 h1 +0")
	assert.Contains(t, got, "4 h2 +0")
}

func TestRenderRBTPlainColors(t *testing.T) {
	r := newTreeRenderer(false)
	got := r.Render(trees.NewRBT(10, 20, 30))

	want := strings.Join([]string{
		"      /---- 30(R)",
		"----- 20(B)",
		"      \\---- 10(R)",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestRenderEmpty(t *testing.T) {
	r := newTreeRenderer(true)
	for _, kind := range trees.Kinds {
		tree, _ := trees.New(kind)
		assert.Equal(t, "(empty "+kind.Title()+")\n", r.Render(tree))
	}
}

func TestRenderTraversals(t *testing.T) {
	got := renderTraversals(trees.NewBST(5, 3, 8, 1, 4))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	assert.Equal(t, []string{
		"preorder    5 3 1 4 8",
		"inorder     1 3 4 5 8",
		"postorder   1 4 3 8 5",
		"levelorder  5 3 8 1 4",
	}, lines)
}
