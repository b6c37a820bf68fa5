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

package ostree

// Clone returns a deep copy of the tree. The copy shares no nodes with t.
func (t *Tree) Clone() *Tree {
	return &Tree{root: t.root.clone()}
}

// CopyFrom replaces the contents of t with a deep copy of src. Copying a
// tree onto itself leaves it unchanged.
func (t *Tree) CopyFrom(src *Tree) {
	if t == src {
		return
	}
	tmp := src.Clone()
	t.Swap(tmp)
}

// Move transfers the whole structure to a new tree and leaves t empty.
func (t *Tree) Move() *Tree {
	moved := &Tree{root: t.root}
	t.root = nil
	return moved
}

// Swap exchanges the contents of t and other.
func (t *Tree) Swap(other *Tree) {
	t.root, other.root = other.root, t.root
}
