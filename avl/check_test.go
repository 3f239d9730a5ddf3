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

import (
	"errors"
	"testing"
)

func TestVerifyDetectsCorruption(t *testing.T) {
	fresh := func() *Tree[int] {
		tree := New[int]()
		tree.InsertAll(4, 2, 6, 1, 3, 5, 7)
		if err := tree.Verify(); err != nil {
			t.Fatalf("fresh tree: %v", err)
		}
		return tree
	}

	tree := fresh()
	tree.root.left.height = 5
	if err := tree.Verify(); !errors.Is(err, ErrHeight) {
		t.Errorf("stale height: got %v", err)
	}

	tree = fresh()
	tree.root.left.key = 9
	if err := tree.Verify(); !errors.Is(err, ErrOrder) {
		t.Errorf("misplaced key: got %v", err)
	}

	tree = fresh()
	tree.count = 3
	if err := tree.Verify(); !errors.Is(err, ErrCount) {
		t.Errorf("wrong count: got %v", err)
	}

	// hang a chain off the right spine with consistent heights
	tree = New[int]()
	tree.root = &Node[int]{key: 1, height: 3}
	tree.root.right = &Node[int]{key: 2, height: 2}
	tree.root.right.right = &Node[int]{key: 3, height: 1}
	tree.count = 3
	if err := tree.Verify(); !errors.Is(err, ErrBalance) {
		t.Errorf("unbalanced chain: got %v", err)
	}
}

func TestReleasedNodesHoldNothing(t *testing.T) {
	tree := New[int]()
	tree.InsertAll(20, 10, 30, 25, 35)

	successor := tree.Search(25)
	leaf := tree.Search(10)
	tree.Remove(20)
	tree.Remove(10)

	for _, n := range []*Node[int]{successor, leaf} {
		if n.left != nil || n.right != nil || n.height != 0 {
			t.Errorf("released node still linked: %+v", n)
		}
	}
}
