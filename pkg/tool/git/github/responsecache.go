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

package github

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sync"

	"github.com/gregjones/httpcache"
)

// ResponseCache keeps ETag cached GitHub responses across clients. Entries are
// partitioned by token so that one credential never sees another's responses.
type ResponseCache struct {
	mu     sync.Mutex
	caches map[string]httpcache.Cache
}

func NewResponseCache() *ResponseCache {
	return &ResponseCache{caches: make(map[string]httpcache.Cache)}
}

func (c *ResponseCache) forToken(token string) httpcache.Cache {
	sum := sha256.Sum256([]byte(token))
	key := hex.EncodeToString(sum[:])

	c.mu.Lock()
	defer c.mu.Unlock()

	if cache, ok := c.caches[key]; ok {
		return cache
	}
	cache := httpcache.NewMemoryCache()
	c.caches[key] = cache
	return cache
}

func (c *ResponseCache) transport(token string, next http.RoundTripper) http.RoundTripper {
	return &httpcache.Transport{
		Cache:               c.forToken(token),
		Transport:           next,
		MarkCachedResponses: true,
	}
}
