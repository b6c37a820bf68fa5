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

// Package ostree implements an order-statistics tree: an AVL tree of unique
// int64 values in which every node also counts the nodes of its two
// subtrees. The counters let NthSmallest and NumberOfSmallerValues answer
// rank and select queries in O(log n).
//
// A Tree is not safe for concurrent use. Callers sharing one between
// goroutines must guard every access sequence with a single lock.
package ostree

import "fmt"

// Tree is an ordered set of int64 values. The zero value is an empty tree
// ready to use.
type Tree struct {
	root *node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of stored values.
func (t *Tree) Len() int64 {
	return t.root.size()
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree) Height() int64 {
	return t.root.getHeight()
}

// Insert adds value to the tree. It fails with ErrDuplicateKey when the
// value is already present, in which case the tree is left untouched.
func (t *Tree) Insert(value int64) error {
	root, err := insert(t.root, value)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

// insert places value below n and returns the new root of the subtree.
// Counters are only refreshed on the way back from a successful descent.
func insert(n *node, value int64) (*node, error) {
	if n == nil {
		return newLeaf(value), nil
	}

	var err error
	switch {
	case value < n.value:
		n.left, err = insert(n.left, value)
	case value > n.value:
		n.right, err = insert(n.right, value)
	default:
		return n, fmt.Errorf("tree already contains value %d: %w", value, ErrDuplicateKey)
	}
	if err != nil {
		return n, err
	}

	n.refresh()
	return rebalance(n, value), nil
}

// rebalance restores the AVL property at n after value was inserted below
// it. The inserted value selects which of the four cases applies.
func rebalance(n *node, value int64) *node {
	balance := n.balanceFactor()
	switch {
	case balance > 1 && value < n.left.value:
		return rotateRight(n)
	case balance < -1 && value > n.right.value:
		return rotateLeft(n)
	case balance > 1 && value > n.left.value:
		// Left-Right case
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case balance < -1 && value < n.right.value:
		// Right-Left case
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

func rotateLeft(n *node) *node {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// Demoted node first, it is now a child of pivot.
	n.refresh()
	pivot.refresh()

	return pivot
}

func rotateRight(n *node) *node {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.refresh()
	pivot.refresh()

	return pivot
}

// NthSmallest returns the value of 1-based rank n. It fails with
// ErrInvalidArgument when n is not positive or exceeds Len().
func (t *Tree) NthSmallest(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: NthSmallest supports n > 0 (%d given)", ErrInvalidArgument, n)
	}
	if t.Len() < n {
		return 0, fmt.Errorf("%w: tree contains less than %d elements", ErrInvalidArgument, n)
	}

	cur := t.root
	for n != cur.leftSize+1 {
		if n <= cur.leftSize {
			cur = cur.left
		} else {
			n -= cur.leftSize + 1
			cur = cur.right
		}
	}
	return cur.value, nil
}

// NumberOfSmallerValues returns how many stored values are strictly less
// than value. The value itself does not need to be stored.
func (t *Tree) NumberOfSmallerValues(value int64) int64 {
	var count int64
	cur := t.root
	for cur != nil && cur.value != value {
		if value < cur.value {
			cur = cur.left
		} else {
			count += cur.leftSize + 1
			cur = cur.right
		}
	}
	if cur != nil {
		count += cur.leftSize
	}
	return count
}

// Contains reports whether value is stored in the tree.
func (t *Tree) Contains(value int64) bool {
	cur := t.root
	for cur != nil {
		switch {
		case value < cur.value:
			cur = cur.left
		case value > cur.value:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// Ascend calls fn for every value in increasing order until fn returns
// false.
func (t *Tree) Ascend(fn func(value int64) bool) {
	ascend(t.root, fn)
}

func ascend(n *node, fn func(int64) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}
	return ascend(n.right, fn)
}

// Values returns all stored values in increasing order.
func (t *Tree) Values() []int64 {
	values := make([]int64, 0, t.Len())
	t.Ascend(func(v int64) bool {
		values = append(values, v)
		return true
	})
	return values
}
