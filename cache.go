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

	"github.com/patrickmn/go-cache"
)

// QueryCache memoizes query answers between inserts. Any insert changes
// ranks and counts, so the interpreter flushes it after every successful
// one.
type QueryCache struct {
	c          *cache.Cache
	expiration time.Duration
	hits       int
}

// NewQueryCache creates a cache from cfg, or returns nil when caching is
// disabled. A nil *QueryCache is valid and never hits.
func NewQueryCache(cfg CacheConfig) *QueryCache {
	if !cfg.Enabled {
		return nil
	}
	expiration := cfg.Expiration
	if expiration == 0 {
		expiration = cache.NoExpiration
	}
	return &QueryCache{
		c:          cache.New(expiration, cfg.CleanupInterval),
		expiration: expiration,
	}
}

func queryKey(cmd byte, arg int64) string {
	return string(cmd) + ":" + strconv.FormatInt(arg, 10)
}

func (qc *QueryCache) Get(cmd byte, arg int64) (int64, bool) {
	if qc == nil {
		return 0, false
	}
	val, ok := qc.c.Get(queryKey(cmd, arg))
	if !ok {
		return 0, false
	}
	qc.hits++
	return val.(int64), true
}

func (qc *QueryCache) Put(cmd byte, arg int64, result int64) {
	if qc == nil {
		return
	}
	qc.c.Set(queryKey(cmd, arg), result, qc.expiration)
}

// Invalidate drops every cached answer.
func (qc *QueryCache) Invalidate() {
	if qc == nil {
		return
	}
	qc.c.Flush()
}

// Hits returns how many lookups were answered from the cache.
func (qc *QueryCache) Hits() int {
	if qc == nil {
		return 0
	}
	return qc.hits
}
