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
	"testing"
	"time"

	"github.com/cybrota/avltree/avl"
	"github.com/patrickmn/go-cache"
)

func TestCacheRenderingAndGetRendering(t *testing.T) {
	c := NewRenderCache(0)
	lines := []string{"  20", " / \\", "10 30"}

	// Initially, nothing is cached for the revision.
	if _, ok := GetRendering(c, 3); ok {
		t.Errorf("GetRendering(3) found an entry in an empty cache")
	}

	CacheRendering(c, 3, lines)

	got, ok := GetRendering(c, 3)
	if !ok || len(got) != len(lines) || got[0] != lines[0] {
		t.Errorf("GetRendering(3) = %q, %v; want %q", got, ok, lines)
	}
	if _, ok := GetRendering(c, 4); ok {
		t.Errorf("GetRendering(4) should miss")
	}
}

func TestGetOrRenderFollowsRevision(t *testing.T) {
	c := NewRenderCache(time.Minute)
	tree := avl.New[int]()

	empty := GetOrRender(c, tree)
	if len(empty) != 1 || empty[0] != avl.EmptyIndicator {
		t.Fatalf("empty rendering = %q", empty)
	}

	tree.InsertAll(20, 10, 30)
	lines := GetOrRender(c, tree)
	if len(lines) != 3 {
		t.Fatalf("rendering after insert = %q", lines)
	}
	if c.ItemCount() != 2 {
		t.Errorf("ItemCount() = %d; want 2", c.ItemCount())
	}

	// a duplicate insert keeps the revision and hits the cache
	tree.Insert(20)
	GetOrRender(c, tree)
	if c.ItemCount() != 2 {
		t.Errorf("ItemCount() after no-op = %d; want 2", c.ItemCount())
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	CacheRendering(c, 1, []string{"x"})

	if _, ok := GetRendering(c, 1); !ok {
		t.Errorf("rendering missing right after caching")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := GetRendering(c, 1); ok {
		t.Errorf("rendering still cached after expiry")
	}
}
