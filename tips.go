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
	"math/rand"
)

var tips = []string{
	"Insert 1 2 3 4 5 into a bst and press f3 to watch the same values balance",
	"Rotations keep the inorder traversal unchanged",
	"An AVL tree of height h holds at least fib(h+2)-1 nodes",
	"A red-black tree is at most twice as tall as a perfect one",
	"Flip a red-black root to red and the status line shows which rule broke",
	"Deleting a black leaf is the hardest case in a red-black tree",
	"Save an iteration with ctrl+s before trying something risky",
	"ctrl+a saves an iteration after every change",
	"search V shows every comparison on the way down",
	"Duplicates are ignored, so inserting a value twice is harmless",
	"Levelorder reads the tree one row at a time",
	"Postorder visits children before parents, the order to free a tree in",
	"rotate P C only works when C is a direct child of P",
	"f2 shows notes for the current tree kind",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}
