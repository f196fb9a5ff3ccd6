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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered markdown depends on the terminal width, so keep it short lived
	renderCacheExpiration = 30 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered explain pages
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func renderCacheKey(topic string, width int) string {
	return fmt.Sprintf("%s@%d", topic, width)
}

func CacheRendered(c *cache.Cache, topic string, width int, rendered string) {
	c.Set(renderCacheKey(topic, width), rendered, renderCacheExpiration)
}

func GetRendered(c *cache.Cache, topic string, width int) string {
	val, ok := c.Get(renderCacheKey(topic, width))
	if !ok {
		return ""
	}
	return val.(string)
}
