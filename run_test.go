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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ansel1/merry"
	"github.com/cybrota/arbor/trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietOutput() *bytes.Buffer { return &bytes.Buffer{} }

func TestRunOpsInline(t *testing.T) {
	var out bytes.Buffer
	tree, err := runOps(&out, runOptions{
		Kind:  trees.KindAVL,
		Order: trees.Preorder,
		Ops:   []string{"insert 1 2 3 4 5"},
	}, newLogger("error", quietOutput()))
	require.NoError(t, err)

	assert.Equal(t, "2 1 4 3 5\n", out.String())
	assert.Equal(t, 5, tree.Len())
}

func TestRunOpsScriptThenInline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(path, []byte("insert 5 3 8\ninsert 1 4\n"), 0o644))

	var out bytes.Buffer
	_, err := runOps(&out, runOptions{
		Kind:       trees.KindBST,
		Order:      trees.Inorder,
		ScriptPath: path,
		Ops:        []string{"delete 5", "search 4"},
		All:        true,
	}, newLogger("error", quietOutput()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "found 4 after 3 comparison(s): 8 -> 3 -> 4", lines[0])
	assert.Equal(t, "inorder     1 3 4 8", lines[2])
}

func TestRunOpsJSON(t *testing.T) {
	var out bytes.Buffer
	_, err := runOps(&out, runOptions{
		Kind:  trees.KindRBT,
		Order: trees.Inorder,
		Ops:   []string{"insert 10; insert 20; insert 30"},
		JSON:  true,
	}, newLogger("error", quietOutput()))
	require.NoError(t, err)

	jsonPart := strings.TrimSuffix(out.String(), "10 20 30\n")
	restored, err := trees.FromJSON([]byte(jsonPart))
	require.NoError(t, err)
	assert.Equal(t, []int{20, 10, 30}, restored.Preorder())
	assert.NoError(t, restored.Check())
}

func TestRunOpsJSONUnsupported(t *testing.T) {
	_, err := runOps(&bytes.Buffer{}, runOptions{
		Kind:  trees.KindBST,
		Order: trees.Inorder,
		Ops:   []string{"insert 1"},
		JSON:  true,
	}, newLogger("error", quietOutput()))
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrUnsupported))
}

func TestRunOpsWarnsOnBrokenInvariant(t *testing.T) {
	var logs bytes.Buffer
	_, err := runOps(&bytes.Buffer{}, runOptions{
		Kind:  trees.KindRBT,
		Order: trees.Inorder,
		Ops:   []string{"insert 10 20 30", "flip 20"},
	}, newLogger("warn", &logs))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "invariants")
}

func TestRunOpsErrors(t *testing.T) {
	log := newLogger("error", quietOutput())

	_, err := runOps(&bytes.Buffer{}, runOptions{Kind: "splay", Order: trees.Inorder}, log)
	assert.True(t, merry.Is(err, trees.ErrUnknownKind))

	_, err = runOps(&bytes.Buffer{}, runOptions{Kind: trees.KindAVL, Order: trees.Inorder, Ops: []string{"insert x"}}, log)
	assert.True(t, merry.Is(err, ErrParse))

	_, err = runOps(&bytes.Buffer{}, runOptions{Kind: trees.KindAVL, Order: trees.Inorder, ScriptPath: filepath.Join(t.TempDir(), "none")}, log)
	assert.Error(t, err)
}

func TestRunOpsPrint(t *testing.T) {
	var out bytes.Buffer
	_, err := runOps(&out, runOptions{
		Kind:  trees.KindBST,
		Order: trees.Inorder,
		Ops:   []string{"insert 2 1 3"},
		Print: true,
	}, newLogger("error", quietOutput()))
	require.NoError(t, err)
	assert.Equal(t, "      /---- 3\n----- 2\n      \\---- 1\n1 2 3\n", out.String())
}
