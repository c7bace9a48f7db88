/*
Copyright 2024 The KodeRover Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cache

import "github.com/koderover/snapin/pkg/config"

// ICache stores LLM completions keyed by prompt hash.
type ICache interface {
	Store(key string, data string) error
	Load(key string) (string, error)
	Exists(key string) bool
	IsCacheDisabled() bool
}

type CacheType string

var (
	CacheTypeRedis CacheType = "redis"
	CacheTypeMem   CacheType = "memory"
	CacheTypeNone  CacheType = "none"
)

// New returns the cache matching cacheType, falling back to memory.
func New(noCache bool, cacheType CacheType) ICache {
	switch cacheType {
	case CacheTypeRedis:
		return NewRedisCacheAI(config.RedisCommonCacheTokenDB(), noCache)
	case CacheTypeNone:
		return NewMemCache(true)
	default:
		return NewMemCache(noCache)
	}
}
