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

package avl

import "cmp"

// Node is a single vertex of a Tree. Handles returned by Search stay valid
// until the key they hold is removed.
type Node[T cmp.Ordered] struct {
	key    T
	height int // height of the subtree rooted here, 1 for a leaf
	left   *Node[T]
	right  *Node[T]
}

func newNode[T cmp.Ordered](key T) *Node[T] {
	return &Node[T]{key: key, height: 1}
}

// release drops every reference held by a discarded node
func release[T cmp.Ordered](n *Node[T]) {
	var zero T
	n.key = zero
	n.height = 0
	n.left = nil
	n.right = nil
}

// Key returns the key stored in the node.
func (n *Node[T]) Key() T {
	return n.key
}

// Height returns the cached subtree height, 0 for a nil node.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Left returns the left child or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Balance is height(left) - height(right).
func (n *Node[T]) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node[T]) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}
