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

// Package trees holds three ordered set engines over int values: an
// unbalanced binary search tree, an AVL tree and a red-black tree.
//
// The engines share the Tree capability set. Optional operations (manual
// rotation, colour flipping, snapshots) are advertised by the engine's Kind
// so callers can dispatch on the tag instead of on dynamic types.
//
// None of the engines lock. A tree belongs to one caller at a time, and a
// saved copy must be taken with Clone or CloneTree before further mutation.
package trees
