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
	"io"
	"math/rand"
	"slices"

	"github.com/cybrota/avltree/avl"
	"github.com/schollz/progressbar/v3"
)

// BenchOptions controls a randomized stress run
type BenchOptions struct {
	Ops      int   // number of operations
	KeySpace int   // keys are drawn from [0, KeySpace)
	Seed     int64 // random seed, runs with the same seed are identical
	Progress io.Writer
}

// BenchResult summarises a finished run
type BenchResult struct {
	Inserted int
	Removed  int
	NoOps    int
	Count    int
	Height   int
}

func (r BenchResult) String() string {
	return fmt.Sprintf("%d inserts, %d removes, %d no-ops; %d keys left, height %d",
		r.Inserted, r.Removed, r.NoOps, r.Count, r.Height)
}

func newBenchBar(ops int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(ops,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌳 Balancing..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(0),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// RunBench applies random inserts and removes to a fresh tree and a reference
// set, checking after every step that both agree and the tree is balanced.
func RunBench(opts BenchOptions) (BenchResult, error) {
	var result BenchResult

	if opts.Ops < 0 {
		return result, fmt.Errorf("ops must not be negative: %d", opts.Ops)
	}
	if opts.KeySpace <= 0 {
		return result, fmt.Errorf("key space must be positive: %d", opts.KeySpace)
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := newBenchBar(opts.Ops, progress)

	rng := rand.New(rand.NewSource(opts.Seed))
	tree := avl.New[int]()
	reference := make(map[int]struct{})

	for i := 0; i < opts.Ops; i++ {
		key := rng.Intn(opts.KeySpace)
		_, present := reference[key]

		if rng.Intn(2) == 0 {
			added := tree.Insert(key)
			if added == present {
				return result, fmt.Errorf("op %d: insert %d returned %v with key present=%v", i, key, added, present)
			}
			if added {
				reference[key] = struct{}{}
				result.Inserted++
			} else {
				result.NoOps++
			}
		} else {
			removed := tree.Remove(key)
			if removed != present {
				return result, fmt.Errorf("op %d: remove %d returned %v with key present=%v", i, key, removed, present)
			}
			if removed {
				delete(reference, key)
				result.Removed++
			} else {
				result.NoOps++
			}
		}

		if err := tree.Verify(); err != nil {
			return result, fmt.Errorf("op %d: %w", i, err)
		}
		if tree.Count() != len(reference) {
			return result, fmt.Errorf("op %d: tree holds %d keys, reference holds %d", i, tree.Count(), len(reference))
		}
		_, want := reference[key]
		if tree.Contains(key) != want {
			return result, fmt.Errorf("op %d: membership of %d is %v, want %v", i, key, !want, want)
		}

		_ = bar.Add(1)
	}
	if opts.Ops > 0 {
		_ = bar.Finish()
	}

	want := make([]int, 0, len(reference))
	for k := range reference {
		want = append(want, k)
	}
	slices.Sort(want)
	if got := tree.Keys(); !slices.Equal(got, want) {
		return result, fmt.Errorf("final keys differ from reference: got %d keys, want %d", len(got), len(want))
	}

	result.Count = tree.Count()
	result.Height = tree.Height()
	return result, nil
}
