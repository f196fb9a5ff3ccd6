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
	"github.com/ansel1/merry"
)

// Invariant violations reported by Check. Each returned error carries the
// offending node's value under the "value" key.
var (
	ErrOrder       = merry.New("binary search ordering violated")
	ErrHeight      = merry.New("stored height does not match subtree height")
	ErrBalance     = merry.New("balance factor outside [-1, 1]")
	ErrRedRoot     = merry.New("root is red")
	ErrRedRed      = merry.New("red node has a red child")
	ErrBlackHeight = merry.New("black height differs between paths")
	ErrParentLink  = merry.New("parent link does not match structural parent")
)

// ViolationValue extracts the node value attached to a Check error
func ViolationValue(err error) (int, bool) {
	v, ok := merry.Value(err, "value").(int)
	return v, ok
}

// IsViolation reports whether err is one of the invariant errors above
func IsViolation(err error) bool {
	return merry.Is(err, ErrOrder, ErrHeight, ErrBalance, ErrRedRoot, ErrRedRed, ErrBlackHeight, ErrParentLink)
}
