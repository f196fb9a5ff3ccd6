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

// New builds an empty engine for kind
func New(kind Kind) (Tree, error) {
	switch kind {
	case KindBST:
		return NewBST(), nil
	case KindAVL:
		return NewAVLTree(), nil
	case KindRBT:
		return NewRBT(), nil
	}
	return nil, ErrUnknownKind.Here().WithValue("kind", string(kind))
}

// Build creates an engine of kind and inserts values in order
func Build(kind Kind, values ...int) (Tree, error) {
	tree, err := New(kind)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		tree.Insert(v)
	}
	return tree, nil
}

// Rotate performs a manual rotation when the engine supports it. The
// second result is false when kind has no rotation at all.
func Rotate(t Tree, parentValue, childValue int) (rotated, supported bool) {
	if !t.Kind().SupportsRotate() {
		return false, false
	}
	return t.(Rotator).Rotate(parentValue, childValue), true
}

// FlipColor flips a node colour when the engine has colours
func FlipColor(t Tree, value int) (flipped, supported bool) {
	if !t.Kind().SupportsColor() {
		return false, false
	}
	return t.(ColorFlipper).FlipNodeColor(value), true
}
