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
	"cmp"
	"errors"
	"fmt"
)

// Invariant violations reported by Verify.
var (
	ErrOrder   = errors.New("avl: keys out of order")
	ErrHeight  = errors.New("avl: stale node height")
	ErrBalance = errors.New("avl: node out of balance")
	ErrCount   = errors.New("avl: node count mismatch")
)

// Verify checks ordering, cached heights, balance and the node count of the
// whole tree and returns the first violation found.
func (tree *Tree[T]) Verify() error {
	n, _, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted %d, recorded %d", ErrCount, n, tree.count)
	}
	return nil
}

// check validates the subtree at p, whose keys must lie strictly between
// the optional bounds. It returns the node count and the real height.
func check[T cmp.Ordered](p *Node[T], low *T, high *T) (int, int, error) {
	if p == nil {
		return 0, 0, nil
	}
	if (low != nil && p.key <= *low) || (high != nil && p.key >= *high) {
		return 0, 0, fmt.Errorf("%w: at key %v", ErrOrder, p.key)
	}
	ln, lh, err := check(p.left, low, &p.key)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := check(p.right, &p.key, high)
	if err != nil {
		return 0, 0, err
	}
	h := max(lh, rh) + 1
	if p.height != h {
		return 0, 0, fmt.Errorf("%w: at key %v: cached %d, actual %d", ErrHeight, p.key, p.height, h)
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, 0, fmt.Errorf("%w: at key %v: balance %+d", ErrBalance, p.key, d)
	}
	return ln + rn + 1, h, nil
}
