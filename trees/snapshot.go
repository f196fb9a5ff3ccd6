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
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ansel1/merry"
)

// Snapshot is the plain nested record a red-black tree is exported as.
// Parent links are not part of it; they are rebuilt on import.
type Snapshot struct {
	Value int       `json:"value"`
	Color Color     `json:"color"`
	Left  *Snapshot `json:"left"`
	Right *Snapshot `json:"right"`
}

var ErrBadColor = merry.New("invalid node colour")

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts "RED"/"BLACK" in any case, or the numeric 0/1 form
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return merry.Wrap(err)
		}
		switch strings.ToUpper(s) {
		case "RED":
			*c = Red
		case "BLACK":
			*c = Black
		default:
			return ErrBadColor.Here().WithValue("color", s)
		}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrBadColor.Here().WithValue("color", string(data))
	}
	switch Color(n) {
	case Red, Black:
		*c = Color(n)
		return nil
	}
	return ErrBadColor.Here().WithValue("color", n)
}

// Snapshot exports the tree; an empty tree yields nil
func (tree *RBT) Snapshot() *Snapshot {
	return snapshotNode(tree.Root)
}

func snapshotNode(node *RBNode) *Snapshot {
	if node == nil {
		return nil
	}
	return &Snapshot{
		Value: node.Value,
		Color: node.Color,
		Left:  snapshotNode(node.Left),
		Right: snapshotNode(node.Right),
	}
}

// FromSnapshot rebuilds a tree top-down, deriving each child's parent link
// from its freshly built parent. The record is taken as-is; call Check to
// validate an untrusted one.
func FromSnapshot(s *Snapshot) *RBT {
	return &RBT{Root: restoreNode(s, nil)}
}

func restoreNode(s *Snapshot, parent *RBNode) *RBNode {
	if s == nil {
		return nil
	}
	node := &RBNode{Value: s.Value, Color: s.Color, parent: parent}
	node.Left = restoreNode(s.Left, node)
	node.Right = restoreNode(s.Right, node)
	return node
}

// ToJSON encodes the tree as nested {value, color, left, right} records.
// An empty tree encodes as null.
func (tree *RBT) ToJSON() ([]byte, error) {
	data, err := json.Marshal(tree.Snapshot())
	if err != nil {
		return nil, merry.Wrap(err)
	}
	return data, nil
}

// MarshalJSON lets an *RBT be embedded directly in other JSON documents
func (tree *RBT) MarshalJSON() ([]byte, error) {
	return tree.ToJSON()
}

// FromJSON decodes a tree written by ToJSON
func FromJSON(data []byte) (*RBT, error) {
	var s *Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, merry.Prepend(err, "decode red-black snapshot")
	}
	return FromSnapshot(s), nil
}
