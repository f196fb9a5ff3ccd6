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

// Kind tags an engine so callers can dispatch without inspecting dynamic types
type Kind string

const (
	KindBST Kind = "bst"
	KindAVL Kind = "avl"
	KindRBT Kind = "rbt"
)

// Kinds lists every engine in display order
var Kinds = []Kind{KindBST, KindAVL, KindRBT}

var ErrUnknownKind = merry.New("unknown tree kind")

// ParseKind accepts the short tag or a few spelled-out aliases
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bst", "binary", "unbalanced":
		return KindBST, nil
	case "avl":
		return KindAVL, nil
	case "rbt", "rb", "redblack", "red-black":
		return KindRBT, nil
	}
	return "", ErrUnknownKind.Here().WithValue("kind", s)
}

func (k Kind) String() string { return string(k) }

// Title returns a human readable engine name
func (k Kind) Title() string {
	switch k {
	case KindBST:
		return "Binary Search Tree"
	case KindAVL:
		return "AVL Tree"
	case KindRBT:
		return "Red-Black Tree"
	}
	return string(k)
}

// Tree is the capability set shared by every engine.
//
// Mutating operations never fail: an invalid request (duplicate insert,
// absent delete) leaves the tree untouched and reports false.
type Tree interface {
	Kind() Kind
	Insert(value int) bool
	Delete(value int) bool
	Contains(value int) bool
	Path(value int) []int // values compared while descending toward value
	Len() int
	Height() int
	Clear()
	Preorder() []int
	Inorder() []int
	Postorder() []int
	LevelOrder() []int
	Check() error
	CloneTree() Tree
}

// Rotator is implemented by engines that allow manual rotations
type Rotator interface {
	Rotate(parentValue, childValue int) bool
}

// ColorFlipper is implemented by engines with coloured nodes
type ColorFlipper interface {
	FlipNodeColor(value int) bool
}

// Snapshotter exports the tree as a nested plain record
type Snapshotter interface {
	Snapshot() *Snapshot
}

// SupportsRotate reports whether manual rotation is offered for kind
func (k Kind) SupportsRotate() bool { return k == KindBST }

// SupportsColor reports whether nodes of kind carry a colour
func (k Kind) SupportsColor() bool { return k == KindRBT }
