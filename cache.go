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
	"strconv"
	"time"

	"github.com/cybrota/avltree/avl"
	"github.com/patrickmn/go-cache"
)

const (
	// Default lifetime of a cached rendering
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for tree renderings. Entries are keyed by
// tree revision, so a mutation never serves a stale picture.
func NewRenderCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = renderCacheExpiration
	}
	return cache.New(expiration, renderCacheCleanup)
}

func renderKey(revision uint64) string {
	return strconv.FormatUint(revision, 10)
}

func CacheRendering(c *cache.Cache, revision uint64, lines []string) {
	c.Set(renderKey(revision), lines, cache.DefaultExpiration)
}

func GetRendering(c *cache.Cache, revision uint64) ([]string, bool) {
	val, ok := c.Get(renderKey(revision))
	if !ok {
		return nil, false
	}
	return val.([]string), true
}

// GetOrRender returns the cached rendering for the tree's current revision,
// rendering and caching it on a miss.
func GetOrRender(c *cache.Cache, tree *avl.Tree[int]) []string {
	if lines, ok := GetRendering(c, tree.Revision()); ok {
		return lines
	}
	lines := tree.Render()
	CacheRendering(c, tree.Revision(), lines)
	return lines
}
