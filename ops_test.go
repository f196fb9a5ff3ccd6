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
	"testing"

	"github.com/ansel1/merry"
	"github.com/cybrota/arbor/trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOps(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Op
	}{
		{
			name: "single insert",
			src:  "insert 5 3 8",
			want: []Op{{Verb: VerbInsert, Args: []int{5, 3, 8}, Line: 1, Text: "insert 5 3 8"}},
		},
		{
			name: "semicolons and comments",
			src:  "insert 1,2 ; delete 2 # drop it\n\n# only a comment\nclear",
			want: []Op{
				{Verb: VerbInsert, Args: []int{1, 2}, Line: 1, Text: "insert 1,2"},
				{Verb: VerbDelete, Args: []int{2}, Line: 1, Text: "delete 2"},
				{Verb: VerbClear, Args: []int{}, Line: 4, Text: "clear"},
			},
		},
		{
			name: "aliases and case",
			src:  "ADD -4\nrm 7\nfind 3\nrot 5 3\ncolour 9",
			want: []Op{
				{Verb: VerbInsert, Args: []int{-4}, Line: 1, Text: "ADD -4"},
				{Verb: VerbDelete, Args: []int{7}, Line: 2, Text: "rm 7"},
				{Verb: VerbSearch, Args: []int{3}, Line: 3, Text: "find 3"},
				{Verb: VerbRotate, Args: []int{5, 3}, Line: 4, Text: "rot 5 3"},
				{Verb: VerbFlip, Args: []int{9}, Line: 5, Text: "colour 9"},
			},
		},
		{
			name: "quoted values",
			src:  `insert "10" '20'`,
			want: []Op{{Verb: VerbInsert, Args: []int{10, 20}, Line: 1, Text: `insert "10" '20'`}},
		},
		{
			name: "empty script",
			src:  "  \n # nothing\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOps(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOpsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unknown verb", "insert 1\nbalance 3", 2},
		{"not an integer", "insert 1 two", 1},
		{"rotate needs two", "insert 1\n\nrotate 5", 3},
		{"clear takes none", "clear 4", 1},
		{"search takes one", "search 1 2", 1},
		{"missing values", "delete", 1},
		{"unterminated quote", `insert "5`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := ParseOps(tt.src)
			require.Error(t, err)
			assert.Nil(t, ops)
			assert.True(t, merry.Is(err, ErrParse))
			line, ok := OpLine(err)
			require.True(t, ok)
			assert.Equal(t, tt.line, line)
			assert.NotEmpty(t, merry.Value(err, "op"))
		})
	}
}

func TestApplyOpsPerKind(t *testing.T) {
	ops, err := ParseOps("insert 5 3 8 1 4; delete 3; search 4")
	require.NoError(t, err)

	for _, kind := range trees.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			tree, err := trees.New(kind)
			require.NoError(t, err)

			results, err := ApplyOps(tree, ops)
			require.NoError(t, err)
			require.Len(t, results, 3)

			assert.True(t, results[0].Changed)
			assert.True(t, results[1].Changed)
			assert.False(t, results[2].Changed)
			assert.True(t, results[2].Found)
			assert.Equal(t, 4, results[2].Path[len(results[2].Path)-1])
			assert.Equal(t, []int{1, 4, 5, 8}, tree.Inorder())
			assert.NoError(t, tree.Check())
		})
	}
}

func TestApplyOpNoOps(t *testing.T) {
	tree := trees.NewBST(5, 3, 8)

	res, err := ApplyOp(tree, Op{Verb: VerbInsert, Args: []int{5}})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Contains(t, res.Message, "already present")

	res, err = ApplyOp(tree, Op{Verb: VerbDelete, Args: []int{42}})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Contains(t, res.Message, "not found")

	res, err = ApplyOp(tree, Op{Verb: VerbRotate, Args: []int{3, 8}})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = ApplyOp(tree, Op{Verb: VerbSearch, Args: []int{7}})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{5, 8}, res.Path)

	assert.Equal(t, []int{3, 5, 8}, tree.Inorder())
}

func TestApplyOpRotateAndFlip(t *testing.T) {
	bst := trees.NewBST(5, 3, 8, 1, 4)
	res, err := ApplyOp(bst, Op{Verb: VerbRotate, Args: []int{5, 3}})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []int{3, 1, 5, 4, 8}, bst.Preorder())

	rbt := trees.NewRBT(10, 20, 30)
	res, err = ApplyOp(rbt, Op{Verb: VerbFlip, Args: []int{10}})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Error(t, rbt.Check())

	res, err = ApplyOp(rbt, Op{Verb: VerbFlip, Args: []int{99}})
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestApplyOpUnsupported(t *testing.T) {
	tests := []struct {
		kind trees.Kind
		op   Op
	}{
		{trees.KindAVL, Op{Verb: VerbRotate, Args: []int{2, 1}, Line: 7}},
		{trees.KindRBT, Op{Verb: VerbRotate, Args: []int{2, 1}, Line: 7}},
		{trees.KindBST, Op{Verb: VerbFlip, Args: []int{2}, Line: 7}},
		{trees.KindAVL, Op{Verb: VerbFlip, Args: []int{2}, Line: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+" "+string(tt.op.Verb), func(t *testing.T) {
			tree, err := trees.Build(tt.kind, 2, 1, 3)
			require.NoError(t, err)
			before := tree.Preorder()

			_, err = ApplyOp(tree, tt.op)
			require.Error(t, err)
			assert.True(t, merry.Is(err, ErrUnsupported))
			assert.Equal(t, tt.kind.String(), merry.Value(err, "kind"))
			line, ok := OpLine(err)
			require.True(t, ok)
			assert.Equal(t, 7, line)
			assert.Equal(t, before, tree.Preorder())
		})
	}
}

func TestApplyOpsStopsAtFirstError(t *testing.T) {
	tree := trees.NewAVLTree()
	ops, err := ParseOps("insert 1 2 3\nflip 2\ninsert 4")
	require.NoError(t, err)

	results, err := ApplyOps(tree, ops)
	require.Error(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, []int{1, 2, 3}, tree.Inorder())
}

func TestOpMutates(t *testing.T) {
	assert.True(t, Op{Verb: VerbInsert}.Mutates())
	assert.True(t, Op{Verb: VerbClear}.Mutates())
	assert.False(t, Op{Verb: VerbSearch}.Mutates())
	assert.False(t, Op{Verb: "bogus"}.Mutates())
}
