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
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	testCases := map[string]Kind{
		"bst":       KindBST,
		" AVL ":     KindAVL,
		"rbt":       KindRBT,
		"red-black": KindRBT,
	}
	for input, want := range testCases {
		got, err := ParseKind(input)
		require.Nil(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseKind("splay")
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrUnknownKind))
	assert.Equal(t, "splay", merry.Value(err, "kind"))
}

func TestParseOrder(t *testing.T) {
	for _, order := range Orders {
		got, err := ParseOrder(string(order))
		require.Nil(t, err)
		assert.Equal(t, order, got)
	}
	got, err := ParseOrder("bfs")
	require.Nil(t, err)
	assert.Equal(t, LevelOrder, got)

	_, err = ParseOrder("zigzag")
	assert.True(t, merry.Is(err, ErrUnknownOrder))
}

func TestNewBuildsEveryKind(t *testing.T) {
	for _, kind := range Kinds {
		tree, err := New(kind)
		require.Nil(t, err)
		assert.Equal(t, kind, tree.Kind())
		assert.Equal(t, 0, tree.Len())
		assert.Equal(t, 0, tree.Height())
		assert.Equal(t, []int{}, tree.Inorder())
	}

	_, err := New(Kind("treap"))
	assert.True(t, merry.Is(err, ErrUnknownKind))
}

func TestTraverseDispatch(t *testing.T) {
	tree, err := Build(KindBST, 5, 3, 8, 1, 4)
	require.Nil(t, err)

	assert.Equal(t, []int{5, 3, 1, 4, 8}, Traverse(tree, Preorder))
	assert.Equal(t, []int{1, 3, 4, 5, 8}, Traverse(tree, Inorder))
	assert.Equal(t, []int{1, 4, 3, 8, 5}, Traverse(tree, Postorder))
	assert.Equal(t, []int{5, 3, 8, 1, 4}, Traverse(tree, LevelOrder))
	assert.Nil(t, Traverse(tree, Order("zigzag")))
}

func TestOptionalCapabilities(t *testing.T) {
	bst, _ := Build(KindBST, 5, 8)
	rotated, supported := Rotate(bst, 5, 8)
	assert.True(t, supported)
	assert.True(t, rotated)
	assert.Equal(t, []int{8, 5}, bst.Preorder())

	avl, _ := Build(KindAVL, 5, 8)
	rotated, supported = Rotate(avl, 5, 8)
	assert.False(t, supported)
	assert.False(t, rotated)

	rbt, _ := Build(KindRBT, 5, 8)
	flipped, supported := FlipColor(rbt, 8)
	assert.True(t, supported)
	assert.True(t, flipped)

	_, supported = FlipColor(bst, 8)
	assert.False(t, supported)
}
