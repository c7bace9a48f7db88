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

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/koderover/snapin/pkg/config"
)

const llmHashKey = "snapin-llm"

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// RedisCacheAI keeps every entry as a field of a single hash so that one TTL expires the whole cache.
type RedisCacheAI struct {
	redisClient *redis.Client
	hashKey     string
	noCache     bool
	ttl         time.Duration
}

// NewRedisCacheAI callers has to make sure the caller has the settings for redis in their env variables.
func NewRedisCacheAI(db int, noCache bool) ICache {
	redisOnce.Do(func() {
		redisConfig := &redis.Options{
			Addr: fmt.Sprintf("%s:%d", config.RedisHost(), config.RedisPort()),
			DB:   db,
		}

		if config.RedisUserName() != "" {
			redisConfig.Username = config.RedisUserName()
		}
		if config.RedisPassword() != "" {
			redisConfig.Password = config.RedisPassword()
		}
		redisClient = redis.NewClient(redisConfig)
	})

	return &RedisCacheAI{
		redisClient: redisClient,
		hashKey:     llmHashKey,
		noCache:     noCache,
		ttl:         24 * time.Hour,
	}
}

func (c *RedisCacheAI) Store(key, data string) error {
	_, err := c.redisClient.HSet(context.TODO(), c.hashKey, key, data).Result()
	if err != nil {
		return err
	}

	// not thread safe
	if c.ttl > 0 {
		_, err = c.redisClient.Expire(context.Background(), c.hashKey, c.ttl).Result()
	}
	return err
}

func (c *RedisCacheAI) Load(key string) (string, error) {
	return c.redisClient.HGet(context.TODO(), c.hashKey, key).Result()
}

func (c *RedisCacheAI) Exists(key string) bool {
	existed, err := c.redisClient.HExists(context.TODO(), c.hashKey, key).Result()
	if err != nil {
		return false
	}
	return existed
}

func (c *RedisCacheAI) IsCacheDisabled() bool {
	return c.noCache
}
