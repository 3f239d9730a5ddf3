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

// Package avl implements a height-balanced binary search tree over any
// ordered key type, with an ASCII renderer for inspecting its shape.
//
// A Tree is not safe for concurrent use; callers sharing one must serialize
// access themselves.
package avl

import "cmp"

// Tree holds the root of an AVL tree. The zero value is an empty tree.
type Tree[T cmp.Ordered] struct {
	root     *Node[T]
	count    int
	revision uint64
}

// New creates an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Count is the number of keys in the tree.
func (tree *Tree[T]) Count() int {
	return tree.count
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Height of the whole tree, 0 when empty.
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}

// Revision increases by one each time Insert or Remove changes the tree.
func (tree *Tree[T]) Revision() uint64 {
	return tree.revision
}

// Search returns the node holding value, or nil when it is absent.
func (tree *Tree[T]) Search(value T) *Node[T] {
	node := tree.root
	for node != nil {
		switch {
		case value < node.key:
			node = node.left
		case value > node.key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Contains reports whether value is in the tree.
func (tree *Tree[T]) Contains(value T) bool {
	return tree.Search(value) != nil
}

// Insert adds value to the tree. A duplicate leaves the tree unchanged and
// returns false.
func (tree *Tree[T]) Insert(value T) bool {
	added := false
	tree.root = tree.insertRecursive(tree.root, value, &added)
	if added {
		tree.count++
		tree.revision++
	}
	return added
}

// InsertAll inserts each value in order and returns how many were added.
func (tree *Tree[T]) InsertAll(values ...T) int {
	n := 0
	for _, v := range values {
		if tree.Insert(v) {
			n++
		}
	}
	return n
}

func (tree *Tree[T]) insertRecursive(node *Node[T], value T, added *bool) *Node[T] {
	if node == nil {
		*added = true
		return newNode(value)
	}

	if value < node.key {
		node.left = tree.insertRecursive(node.left, value, added)
	} else if value > node.key {
		node.right = tree.insertRecursive(node.right, value, added)
	} else {
		// duplicate: nothing below changed
		return node
	}

	node.updateHeight()

	balanceFactor := node.Balance()
	if balanceFactor > 1 {
		if value < node.left.key {
			return rotateRight(node)
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	} else if balanceFactor < -1 {
		if value > node.right.key {
			return rotateLeft(node)
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// rotateLeft lifts node.right into node's place and returns it.
func rotateLeft[T cmp.Ordered](node *Node[T]) *Node[T] {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// node is now below pivot, so its height must be fixed first
	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight lifts node.left into node's place and returns it.
func rotateRight[T cmp.Ordered](node *Node[T]) *Node[T] {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance restores the balance of node after a removal somewhere below
// it. With no key to steer by, the rotation is picked from the heights of
// the grandchildren.
func rebalance[T cmp.Ordered](node *Node[T]) *Node[T] {
	node.updateHeight()

	balanceFactor := node.Balance()

	// Left-heavy
	if balanceFactor > 1 {
		if node.left.left.Height() >= node.left.right.Height() {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if node.right.right.Height() >= node.right.left.Height() {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// Keys returns every key in ascending order.
func (tree *Tree[T]) Keys() []T {
	keys := make([]T, 0, tree.count)
	inOrderTraversal(tree.root, &keys)
	return keys
}

func inOrderTraversal[T cmp.Ordered](node *Node[T], result *[]T) {
	if node == nil {
		return
	}
	inOrderTraversal(node.left, result)
	*result = append(*result, node.key)
	inOrderTraversal(node.right, result)
}

// Min returns the smallest key, false when the tree is empty.
func (tree *Tree[T]) Min() (T, bool) {
	var zero T
	node := tree.root
	if node == nil {
		return zero, false
	}
	for node.left != nil {
		node = node.left
	}
	return node.key, true
}

// Max returns the largest key, false when the tree is empty.
func (tree *Tree[T]) Max() (T, bool) {
	var zero T
	node := tree.root
	if node == nil {
		return zero, false
	}
	for node.right != nil {
		node = node.right
	}
	return node.key, true
}
