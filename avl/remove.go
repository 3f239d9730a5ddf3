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

// Remove deletes value from the tree. Removing a key that is not present
// leaves the tree unchanged and returns false.
func (tree *Tree[T]) Remove(value T) bool {
	removed := false
	tree.root = tree.removeRecursive(tree.root, value, &removed)
	if removed {
		tree.count--
		tree.revision++
	}
	return removed
}

func (tree *Tree[T]) removeRecursive(node *Node[T], value T, removed *bool) *Node[T] {
	if node == nil {
		return nil // Key not found
	}

	if value < node.key {
		node.left = tree.removeRecursive(node.left, value, removed)
	} else if value > node.key {
		node.right = tree.removeRecursive(node.right, value, removed)
	} else {
		*removed = true
		if node.right == nil {
			left := node.left
			release(node)
			return left
		}
		if node.left == nil {
			right := node.right
			release(node)
			return right
		}
		spliceSuccessor(node)
	}

	if !*removed {
		return node
	}
	return rebalance(node)
}

// spliceSuccessor moves the in-order successor's key into node and unlinks
// the successor. node must have two children.
//
// The walk starts at the right child and looks one level ahead, stopping at
// the successor's parent, so no parent links are needed. The nodes passed on
// the way are kept on a stack: removing the successor shortens their left
// subtrees and each has to be rebalanced, deepest first.
func spliceSuccessor[T cmp.Ordered](node *Node[T]) {
	candidate := node.right
	path := make([]*Node[T], 0, node.right.Height())
	for candidate.left != nil && candidate.left.left != nil {
		path = append(path, candidate)
		candidate = candidate.left
	}

	if candidate.left == nil {
		// right child has no left subtree, so it is the successor
		node.key = candidate.key
		node.right = candidate.right
		release(candidate)
		return
	}

	successor := candidate.left
	node.key = successor.key
	// the successor has no left child but may own a right subtree
	candidate.left = successor.right
	release(successor)

	path = append(path, candidate)
	for i := len(path) - 1; i >= 0; i-- {
		subtree := rebalance(path[i])
		if i == 0 {
			node.right = subtree
		} else {
			path[i-1].left = subtree
		}
	}
}
