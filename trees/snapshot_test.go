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
	"encoding/json"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tree := NewRBT(41, 38, 31, 12, 19, 8, 45, 50)

	data, err := tree.ToJSON()
	require.Nil(t, err)

	restored, err := FromJSON(data)
	require.Nil(t, err)
	require.Nil(t, restored.Check())

	assert.Equal(t, tree.Inorder(), restored.Inorder())
	assert.Equal(t, tree.Preorder(), restored.Preorder())
	assert.Equal(t, tree.Snapshot(), restored.Snapshot())

	// the restored tree must keep working, which exercises its parent links
	restored.Insert(9)
	restored.Delete(38)
	assert.Nil(t, restored.Check())
	assert.True(t, tree.Contains(38))
}

func TestSnapshotFormat(t *testing.T) {
	tree := NewRBT(10, 20, 30)

	data, err := tree.ToJSON()
	require.Nil(t, err)
	assert.JSONEq(t, `{
		"value": 20, "color": "BLACK",
		"left":  {"value": 10, "color": "RED", "left": null, "right": null},
		"right": {"value": 30, "color": "RED", "left": null, "right": null}
	}`, string(data))
}

func TestSnapshotEmptyTree(t *testing.T) {
	data, err := NewRBT().ToJSON()
	require.Nil(t, err)
	assert.Equal(t, "null", string(data))

	restored, err := FromJSON([]byte("null"))
	require.Nil(t, err)
	assert.Nil(t, restored.Root)
}

func TestSnapshotNumericColors(t *testing.T) {
	restored, err := FromJSON([]byte(`{"value": 5, "color": 1,
		"left": {"value": 2, "color": 0, "left": null, "right": null},
		"right": {"value": 9, "color": "red"}}`))
	require.Nil(t, err)
	require.Nil(t, restored.Check())

	assert.Equal(t, Black, restored.Root.Color)
	assert.Equal(t, Red, restored.Root.Left.Color)
	assert.Equal(t, Red, restored.Root.Right.Color)
	assert.Same(t, restored.Root, restored.Root.Right.Parent())
}

func TestSnapshotRejectsBadColor(t *testing.T) {
	for _, doc := range []string{
		`{"value": 1, "color": "GREEN"}`,
		`{"value": 1, "color": 7}`,
		`{"value": 1, "color": true}`,
	} {
		_, err := FromJSON([]byte(doc))
		require.Error(t, err, doc)
		assert.True(t, merry.Is(err, ErrBadColor), doc)
	}

	_, err := FromJSON([]byte(`{"value": `))
	assert.Error(t, err)
}

func TestRBTEmbedsAsJSON(t *testing.T) {
	doc := struct {
		Tree *RBT `json:"tree"`
	}{Tree: NewRBT(1, 2)}

	data, err := json.Marshal(doc)
	require.Nil(t, err)

	var decoded struct {
		Tree *Snapshot `json:"tree"`
	}
	require.Nil(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc.Tree.Snapshot(), decoded.Tree)
}
