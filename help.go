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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const version = "0.3.0"

func getUsageMarkdown() string {
	return fmt.Sprintf(`

 **Arbor %s**

Play with ordered binary search trees from the terminal. Insert, delete, rotate and recolour
nodes and watch how an unbalanced BST, an AVL tree and a red-black tree react.

Built with Go %s

# 1. Engines
* **bst** plain binary search tree with manual rotations
* **avl** height balanced tree, rebalanced on every insert and delete
* **rbt** red-black tree with manual colour flips and JSON snapshots

# 2. Operations
* insert V... (duplicates are ignored)
* delete V... (absent values are ignored)
* search V (prints the comparison path)
* rotate P C (bst only, C must be a direct child of P)
* flip V (rbt only, no rebalancing afterwards)
* clear

Separate operations with ';' or new lines. '#' starts a comment.

# 3. Examples
* arbor run --kind avl "insert 1 2 3 4 5" --order preorder
* arbor run --kind rbt --script ops.txt --json
* arbor check --rounds 500
* arbor explore

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(getUsageMarkdown(), 80, 3)
	return string(result)
}
