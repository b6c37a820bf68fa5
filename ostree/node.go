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

// node is a single element of the tree. Each child pointer is the only
// reference to its subtree.
type node struct {
	value     int64
	left      *node
	right     *node
	leftSize  int64 // nodes in left subtree
	rightSize int64 // nodes in right subtree
	height    int64
}

func newLeaf(value int64) *node {
	return &node{value: value, height: 1}
}

// size is the number of nodes in the subtree rooted at n.
func (n *node) size() int64 {
	if n == nil {
		return 0
	}
	return n.leftSize + n.rightSize + 1
}

func (n *node) getHeight() int64 {
	if n == nil {
		return 0
	}
	return n.height
}

// refresh recomputes the branch sizes and then the height from the
// immediate children. Children must already be up to date.
func (n *node) refresh() {
	n.leftSize = n.left.size()
	n.rightSize = n.right.size()
	n.height = max(n.left.getHeight(), n.right.getHeight()) + 1
}

func (n *node) balanceFactor() int64 {
	if n == nil {
		return 0
	}
	return n.left.getHeight() - n.right.getHeight()
}

// clone deep copies the subtree rooted at n, counters included.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	return &node{
		value:     n.value,
		left:      n.left.clone(),
		right:     n.right.clone(),
		leftSize:  n.leftSize,
		rightSize: n.rightSize,
		height:    n.height,
	}
}
